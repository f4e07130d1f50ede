package main

import (
	"log/slog"

	"github.com/fishcold0/CwaWeather-backend/internal/config"
	"github.com/fishcold0/CwaWeather-backend/internal/forecast"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	forecastService forecast.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware. Recovery is the last-resort safety net; every
	// resolver failure is already mapped to a JSON envelope in the handler.
	router.Use(gin.Recovery())
	router.Use(requestID())

	app := &App{
		router:          router,
		logger:          logger,
		forecastService: forecast.NewService(cfg, logger),
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
