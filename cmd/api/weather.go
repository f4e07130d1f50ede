package main

import (
	"errors"
	"net/http"

	"github.com/fishcold0/CwaWeather-backend/internal/forecast"

	"github.com/gin-gonic/gin"
)

// WeatherResponse wraps a successful forecast resolution
type WeatherResponse struct {
	Success bool                    `json:"success" example:"true"`
	Data    forecast.ForecastResult `json:"data"`
}

// handleGetWeather godoc
// @Summary Get the 36-hour forecast for a city
// @Description Resolve a city identifier (e.g. taipei, kaohsiung) against the CWA open-data API and return a flat per-interval forecast
// @Tags weather
// @Produce json
// @Param cityId path string true "City identifier, case-insensitive" example(taipei)
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/weather/{cityId} [get]
func (app *App) handleGetWeather(c *gin.Context) {
	cityID := c.Param("cityId")

	result, err := app.forecastService.Resolve(cityID)
	if err != nil {
		var fErr *forecast.Error
		if errors.As(err, &fErr) {
			c.JSON(fErr.HTTPStatus, ErrorResponse{
				Error:   fErr.Label,
				Message: fErr.Message,
				Details: fErr.Details,
			})
			return
		}

		// Resolve only returns *forecast.Error; anything else is a bug
		app.logger.Error("unexpected resolver failure",
			"city_id", cityID,
			"request_id", c.GetString("request_id"),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "伺服器錯誤",
			Message: "無法取得天氣資料，請稍後再試",
		})
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{
		Success: true,
		Data:    *result,
	})
}
