package main

// @title CWA Weather API
// @version 1.0
// @description Backend proxy over the Central Weather Administration open-data API. Translates short city identifiers into 36-hour forecast queries.

// @contact.name API Support

// @BasePath /
