package forecast

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/fishcold0/CwaWeather-backend/internal/config"
	"github.com/fishcold0/CwaWeather-backend/internal/providers/cwa"
)

// ForecastProvider defines the interface for the upstream forecast source
type ForecastProvider interface {
	GetForecast36h(apiKey, locationName string) (*cwa.ForecastAPIResponse, error)
}

// Service resolves a city identifier into a reshaped forecast
type Service interface {
	// Resolve validates cityID, queries the upstream API once and reshapes
	// the result. Failures are always a *Error.
	Resolve(cityID string) (*ForecastResult, error)
}

type forecastService struct {
	provider ForecastProvider
	apiKey   string
	logger   *slog.Logger
}

// NewService creates a forecast service backed by the real CWA client
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	client := cwa.NewClientWithBaseURL(cfg.Upstream.BaseURL, logger)
	return NewServiceWithProvider(client, cfg.Upstream.APIKey, logger)
}

// NewServiceWithProvider creates a forecast service with a custom provider
// This is useful for testing with mock providers
func NewServiceWithProvider(provider ForecastProvider, apiKey string, logger *slog.Logger) Service {
	return &forecastService{
		provider: provider,
		apiKey:   apiKey,
		logger:   logger.With("component", "forecast-service"),
	}
}

func (s *forecastService) Resolve(cityID string) (*ForecastResult, error) {
	locationName, ok := LocationName(strings.ToLower(cityID))
	if !ok {
		return nil, newInvalidCityError(cityID)
	}

	// Checked before any network I/O. The key itself never appears in an
	// error message or log line.
	if s.apiKey == "" {
		return nil, newServerMisconfiguredError()
	}

	apiResp, err := s.provider.GetForecast36h(s.apiKey, locationName)
	if err != nil {
		s.logger.Error("failed to fetch forecast from CWA",
			"location_name", locationName,
			"error", err,
		)

		var statusErr *cwa.StatusError
		if errors.As(err, &statusErr) {
			return nil, newUpstreamError(statusErr.StatusCode, statusErr.Body)
		}
		return nil, newNetworkError(err)
	}

	// The API contract returns exactly one location when a single
	// locationName is requested.
	if len(apiResp.Records.Location) == 0 {
		return nil, newNoDataError(locationName)
	}
	location := apiResp.Records.Location[0]

	slots, err := reshapeWeatherElements(location.WeatherElement)
	if err != nil {
		s.logger.Error("malformed forecast payload from CWA",
			"location_name", locationName,
			"error", err,
		)
		return nil, err
	}

	return &ForecastResult{
		City:       location.LocationName,
		UpdateTime: apiResp.Records.DatasetDescription,
		Forecasts:  slots,
	}, nil
}

// reshapeWeatherElements flattens the per-element time arrays into one slot
// per time interval, preserving upstream order. All elements must share the
// first element's time-array length.
func reshapeWeatherElements(elements []cwa.WeatherElement) ([]ForecastSlot, error) {
	if len(elements) == 0 {
		return []ForecastSlot{}, nil
	}

	n := len(elements[0].Time)
	for _, element := range elements {
		if len(element.Time) != n {
			return nil, newMalformedUpstreamError(element.ElementName, len(element.Time), n)
		}
	}

	slots := make([]ForecastSlot, n)
	for i := 0; i < n; i++ {
		slot := ForecastSlot{
			StartTime: elements[0].Time[i].StartTime,
			EndTime:   elements[0].Time[i].EndTime,
		}
		for _, element := range elements {
			if set, ok := elementSetters[element.ElementName]; ok {
				set(&slot, element.Time[i].Parameter.ParameterName)
			}
		}
		slots[i] = slot
	}

	return slots, nil
}
