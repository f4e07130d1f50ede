package forecast

// ForecastSlot is one forecast time interval. Every value field is a string
// taken verbatim from the upstream parameter, empty when the upstream omits
// that element.
type ForecastSlot struct {
	StartTime string `json:"startTime" example:"2024-01-15 12:00:00"`
	EndTime   string `json:"endTime" example:"2024-01-15 18:00:00"`
	Weather   string `json:"weather" example:"多雲時晴"`
	Rain      string `json:"rain" example:"30%"`
	MinTemp   string `json:"minTemp" example:"18"`
	MaxTemp   string `json:"maxTemp" example:"24"`
	Comfort   string `json:"comfort" example:"舒適"`
	WindSpeed string `json:"windSpeed" example:"3"`
}

// ForecastResult is the reshaped 36-hour forecast for one city. City is the
// upstream location object's own name, not the lookup-table value.
type ForecastResult struct {
	City       string         `json:"city" example:"臺北市"`
	UpdateTime string         `json:"updateTime" example:"三十六小時天氣預報"`
	Forecasts  []ForecastSlot `json:"forecasts"`
}

// elementSetters routes a CWA weather element tag to the slot field it fills.
// Tags outside this set are ignored.
var elementSetters = map[string]func(*ForecastSlot, string){
	"Wx":   func(s *ForecastSlot, v string) { s.Weather = v },
	"PoP":  func(s *ForecastSlot, v string) { s.Rain = v + "%" },
	"MinT": func(s *ForecastSlot, v string) { s.MinTemp = v },
	"MaxT": func(s *ForecastSlot, v string) { s.MaxTemp = v },
	"CI":   func(s *ForecastSlot, v string) { s.Comfort = v },
	"WS":   func(s *ForecastSlot, v string) { s.WindSpeed = v },
}
