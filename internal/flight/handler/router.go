package handler

import (
	"net/http"

	"avia-booking/internal/httpx/middleware"
	"avia-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func NewRouter(engine *gin.Engine, cfg config.FlightConfig, flightHandler *FlightHandler) {
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	flights := engine.Group("/api/v1/flights")
	{
		flights.GET("", flightHandler.GetFlights)
		flights.GET("/:flightNumber", flightHandler.GetFlight)
	}
}
