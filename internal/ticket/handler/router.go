package handler

import (
	"net/http"

	"avia-booking/internal/httpx/middleware"
	"avia-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func NewRouter(engine *gin.Engine, cfg config.TicketConfig, ticketHandler *TicketHandler) {
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tickets := engine.Group("/api/v1/tickets")
	tickets.Use(middleware.RequireUser())
	{
		tickets.POST("", ticketHandler.Create)
		tickets.GET("", ticketHandler.List)
		tickets.GET("/:ticketUid", ticketHandler.Get)
		tickets.PATCH("/:ticketUid", ticketHandler.UpdateStatus)
		tickets.DELETE("/:ticketUid", ticketHandler.Delete)
	}
}
