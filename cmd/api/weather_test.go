package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fishcold0/CwaWeather-backend/internal/config"
	"github.com/fishcold0/CwaWeather-backend/internal/forecast"
	"github.com/fishcold0/CwaWeather-backend/internal/providers/cwa"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUpstreamPayload = `{
	"success": "true",
	"records": {
		"datasetDescription": "三十六小時天氣預報",
		"location": [
			{
				"locationName": "臺北市",
				"weatherElement": [
					{
						"elementName": "Wx",
						"time": [
							{"startTime": "2024-01-15 12:00:00", "endTime": "2024-01-15 18:00:00", "parameter": {"parameterName": "多雲時晴"}},
							{"startTime": "2024-01-15 18:00:00", "endTime": "2024-01-16 00:00:00", "parameter": {"parameterName": "陰時多雲"}}
						]
					},
					{
						"elementName": "PoP",
						"time": [
							{"startTime": "2024-01-15 12:00:00", "endTime": "2024-01-15 18:00:00", "parameter": {"parameterName": "30"}},
							{"startTime": "2024-01-15 18:00:00", "endTime": "2024-01-16 00:00:00", "parameter": {"parameterName": "60"}}
						]
					},
					{
						"elementName": "MinT",
						"time": [
							{"startTime": "2024-01-15 12:00:00", "endTime": "2024-01-15 18:00:00", "parameter": {"parameterName": "18"}},
							{"startTime": "2024-01-15 18:00:00", "endTime": "2024-01-16 00:00:00", "parameter": {"parameterName": "16"}}
						]
					},
					{
						"elementName": "MaxT",
						"time": [
							{"startTime": "2024-01-15 12:00:00", "endTime": "2024-01-15 18:00:00", "parameter": {"parameterName": "24"}},
							{"startTime": "2024-01-15 18:00:00", "endTime": "2024-01-16 00:00:00", "parameter": {"parameterName": "20"}}
						]
					},
					{
						"elementName": "CI",
						"time": [
							{"startTime": "2024-01-15 12:00:00", "endTime": "2024-01-15 18:00:00", "parameter": {"parameterName": "舒適"}},
							{"startTime": "2024-01-15 18:00:00", "endTime": "2024-01-16 00:00:00", "parameter": {"parameterName": "稍有寒意"}}
						]
					},
					{
						"elementName": "WS",
						"time": [
							{"startTime": "2024-01-15 12:00:00", "endTime": "2024-01-15 18:00:00", "parameter": {"parameterName": "3"}},
							{"startTime": "2024-01-15 18:00:00", "endTime": "2024-01-16 00:00:00", "parameter": {"parameterName": "4"}}
						]
					}
				]
			}
		]
	}
}`

// newTestApp wires an App against the given forecast service without
// starting a listener.
func newTestApp(svc forecast.Service) *App {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())

	app := &App{
		router:          router,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		forecastService: svc,
		cfg:             &config.Config{},
	}
	app.registerRoutes()
	return app
}

// newUpstreamApp wires the full pipeline (handler, resolver, cwa client)
// against a fake upstream server.
func newUpstreamApp(t *testing.T, apiKey string, upstream http.HandlerFunc) *App {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := cwa.NewClientWithBaseURL(server.URL, logger)
	svc := forecast.NewServiceWithProvider(client, apiKey, logger)
	return newTestApp(svc)
}

func doRequest(app *App, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {})

	w := doRequest(app, http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err, "timestamp should be RFC3339")

	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestHandleRoot(t *testing.T) {
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {})

	w := doRequest(app, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, w.Code)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, "/api/weather/:cityId", resp.Endpoints.Weather)
	assert.Equal(t, "/api/health", resp.Endpoints.Health)
}

func TestHandleGetWeather_Success(t *testing.T) {
	var upstreamCalls int
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		assert.Equal(t, "臺北市", r.URL.Query().Get("locationName"))
		assert.Equal(t, "test-key", r.URL.Query().Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleUpstreamPayload))
	})

	// Mixed case identifier is normalized before lookup
	w := doRequest(app, http.MethodGet, "/api/weather/TAIPEI")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, upstreamCalls)

	var resp WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "臺北市", resp.Data.City)
	assert.Equal(t, "三十六小時天氣預報", resp.Data.UpdateTime)

	require.Len(t, resp.Data.Forecasts, 2)
	first := resp.Data.Forecasts[0]
	assert.Equal(t, "2024-01-15 12:00:00", first.StartTime)
	assert.Equal(t, "多雲時晴", first.Weather)
	assert.Equal(t, "30%", first.Rain)
	assert.Equal(t, "18", first.MinTemp)
	assert.Equal(t, "24", first.MaxTemp)
	assert.Equal(t, "舒適", first.Comfort)
	assert.Equal(t, "3", first.WindSpeed)
	assert.Equal(t, "60%", resp.Data.Forecasts[1].Rain)
}

func TestHandleGetWeather_InvalidCity(t *testing.T) {
	var upstreamCalls int
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	})

	w := doRequest(app, http.MethodGet, "/api/weather/unknown")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, upstreamCalls)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "無效的城市 ID", resp.Error)
	assert.Contains(t, resp.Message, "unknown")
	assert.Contains(t, resp.Message, "taipei")
}

func TestHandleGetWeather_MissingAPIKey(t *testing.T) {
	var upstreamCalls int
	app := newUpstreamApp(t, "", func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	})

	w := doRequest(app, http.MethodGet, "/api/weather/taipei")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, upstreamCalls, "misconfiguration must be caught before any network call")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "伺服器設定錯誤", resp.Error)
}

func TestHandleGetWeather_UpstreamStatusPassthrough(t *testing.T) {
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("service down for maintenance"))
	})

	w := doRequest(app, http.MethodGet, "/api/weather/taipei")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Details, "service down for maintenance")
}

func TestHandleGetWeather_NoData(t *testing.T) {
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": "true", "records": {"datasetDescription": "", "location": []}}`))
	})

	w := doRequest(app, http.MethodGet, "/api/weather/taipei")

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "臺北市")
}

func TestHandleGetWeather_MalformedUpstream(t *testing.T) {
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// PoP carries one interval fewer than Wx
		_, _ = w.Write([]byte(`{
			"success": "true",
			"records": {
				"datasetDescription": "三十六小時天氣預報",
				"location": [
					{
						"locationName": "臺北市",
						"weatherElement": [
							{
								"elementName": "Wx",
								"time": [
									{"startTime": "a", "endTime": "b", "parameter": {"parameterName": "晴天"}},
									{"startTime": "b", "endTime": "c", "parameter": {"parameterName": "晴天"}}
								]
							},
							{
								"elementName": "PoP",
								"time": [
									{"startTime": "a", "endTime": "b", "parameter": {"parameterName": "10"}}
								]
							}
						]
					}
				]
			}
		}`))
	})

	w := doRequest(app, http.MethodGet, "/api/weather/taipei")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestNoRoute(t *testing.T) {
	app := newUpstreamApp(t, "test-key", func(w http.ResponseWriter, r *http.Request) {})

	w := doRequest(app, http.MethodGet, "/foo")

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "GET /foo")
}
