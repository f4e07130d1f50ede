package cwa

type ForecastAPIResponse struct {
	Success string  `json:"success"`
	Records Records `json:"records"`
}

type Records struct {
	DatasetDescription string     `json:"datasetDescription"`
	Location           []Location `json:"location"`
}

type Location struct {
	LocationName   string           `json:"locationName"`
	WeatherElement []WeatherElement `json:"weatherElement"`
}

// WeatherElement is one forecast variable (Wx, PoP, MinT, MaxT, CI, WS) with
// its per-interval values. All elements of a location share the same time
// axis.
type WeatherElement struct {
	ElementName string      `json:"elementName"`
	Time        []TimeEntry `json:"time"`
}

type TimeEntry struct {
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Parameter Parameter `json:"parameter"`
}

type Parameter struct {
	ParameterName string `json:"parameterName"`
	ParameterUnit string `json:"parameterUnit,omitempty"`
}
