package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RootResponse describes the service and its endpoints
type RootResponse struct {
	Message   string        `json:"message" example:"CWA 天氣預報 API"`
	Endpoints RootEndpoints `json:"endpoints"`
}

// RootEndpoints lists the paths a client can call
type RootEndpoints struct {
	Weather string `json:"weather" example:"/api/weather/:cityId"`
	Health  string `json:"health" example:"/api/health"`
}

// HealthResponse represents the response for the health endpoint
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2024-01-15T08:30:00Z"`
}

// ErrorResponse is the JSON envelope for every failure
type ErrorResponse struct {
	Error   string `json:"error" example:"無效的城市 ID"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// handleRoot godoc
// @Summary Service descriptor
// @Description Describe the API and list its endpoints
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (app *App) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: "CWA 天氣預報 API",
		Endpoints: RootEndpoints{
			Weather: "/api/weather/:cityId",
			Health:  "/api/health",
		},
	})
}

// handleHealth godoc
// @Summary Liveness probe
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleNotFound answers any unmatched route, echoing the requested
// method and path
func (app *App) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   "找不到路由",
		Message: fmt.Sprintf("無法找到 %s %s", c.Request.Method, c.Request.URL.Path),
	})
}
