package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Service descriptor
	app.router.GET("/", app.handleRoot)

	// Health check endpoint
	app.router.GET("/api/health", app.handleHealth)

	// Weather endpoints
	app.router.GET("/api/weather/:cityId", app.handleGetWeather)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	// Unmatched routes get the JSON 404 envelope
	app.router.NoRoute(app.handleNotFound)
}
