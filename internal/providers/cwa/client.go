package cwa

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://opendata.cwa.gov.tw/dist/opendata-swagger.html
// Sample request: https://opendata.cwa.gov.tw/api/v1/rest/datastore/F-C0032-001?Authorization=<key>&locationName=臺北市
const (
	baseURL         = "https://opendata.cwa.gov.tw/api"
	forecast36hPath = "/v1/rest/datastore/F-C0032-001"
)

// StatusError is returned when the CWA API responded with a non-success
// status. Transport failures never produce a StatusError, so callers can
// distinguish the two cases with errors.As.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cwa api returned status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithBaseURL(baseURL, logger)
}

// NewClientWithBaseURL creates a client against a custom base URL. Used by
// tests and by deployments that front the CWA API with an internal mirror.
func NewClientWithBaseURL(base string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    base,
		logger:     logger.With("component", "cwa-client"),
	}
}

// GetForecast36h fetches the 36-hour forecast for a single CWA location name.
func (c *Client) GetForecast36h(apiKey, locationName string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = forecast36hPath

	q := u.Query()
	q.Set("Authorization", apiKey)
	q.Set("locationName", locationName)
	u.RawQuery = q.Encode()

	// The full URL carries the Authorization key; log the location only.
	c.logger.Debug("fetching CWA 36h forecast", "location_name", locationName)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch CWA forecast",
			"location_name", locationName,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("CWA API returned error",
			"status_code", resp.StatusCode,
			"location_name", locationName,
			"response_body", string(body),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode CWA response",
			"location_name", locationName,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
