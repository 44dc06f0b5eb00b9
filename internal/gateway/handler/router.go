package handler

import (
	"net/http"

	"avia-booking/internal/httpx/middleware"
	"avia-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(engine *gin.Engine, cfg config.GatewayConfig, bookingHandler *BookingHandler) {
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api/v1")
	{
		apiGroup.GET("/flights", bookingHandler.GetFlights)

		tickets := apiGroup.Group("/tickets")
		tickets.Use(middleware.RequireUser())
		{
			tickets.GET("", bookingHandler.GetUserTickets)
			tickets.POST("", bookingHandler.PurchaseTicket)
			tickets.GET("/:ticketUid", bookingHandler.GetTicket)
			tickets.DELETE("/:ticketUid", bookingHandler.RefundTicket)
		}

		me := apiGroup.Group("/me")
		me.Use(middleware.RequireUser())
		{
			me.GET("", bookingHandler.GetUserInfo)
		}

		privilege := apiGroup.Group("/privilege")
		privilege.Use(middleware.RequireUser())
		{
			privilege.GET("", bookingHandler.GetPrivilege)
		}
	}
}

// @Summary Health check
// @Description Check if the gateway is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
