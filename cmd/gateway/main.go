package main

import (
	"context"
	"log/slog"
	"os"

	"avia-booking/internal/gateway/client"
	"avia-booking/internal/gateway/handler"
	"avia-booking/internal/gateway/usecase"
	"avia-booking/internal/httpx"
	"avia-booking/internal/httpx/middleware"
	"avia-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Fail safe: never expose debug output on a misconfigured deployment.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newFlightClient(cfg config.GatewayConfig) *client.FlightClient {
	return client.NewFlightClient(client.Config{
		BaseURL: cfg.Upstream.FlightBaseURL,
		Timeout: cfg.Upstream.Timeout,
	})
}

func newTicketClient(cfg config.GatewayConfig) *client.TicketClient {
	return client.NewTicketClient(client.Config{
		BaseURL: cfg.Upstream.TicketBaseURL,
		Timeout: cfg.Upstream.Timeout,
	})
}

func newBonusClient(cfg config.GatewayConfig) *client.BonusClient {
	return client.NewBonusClient(client.Config{
		BaseURL: cfg.Upstream.BonusBaseURL,
		Timeout: cfg.Upstream.Timeout,
	})
}

// @title           avia-booking gateway
// @version         1.0
// @description     Unified customer-facing API over the flight, ticket and bonus services.

// @BasePath  /
// @schemes http https
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on process environment")
	}

	app := fx.New(
		fx.Provide(
			config.LoadGateway,
			fx.Annotate(newFlightClient, fx.As(new(usecase.FlightAPI))),
			fx.Annotate(newTicketClient, fx.As(new(usecase.TicketAPI))),
			fx.Annotate(newBonusClient, fx.As(new(usecase.BonusAPI))),
			usecase.NewBookingUseCase,
			handler.NewBookingHandler,
			func(cfg config.GatewayConfig) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			handler.NewRouter,
			func(lc fx.Lifecycle, engine *gin.Engine, cfg config.GatewayConfig, logger *slog.Logger) {
				httpx.StartServer(lc, engine, cfg.Server.Port, logger)
			},
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start gateway", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop gateway", "error", err)
	}

	slog.Info("gateway stopped")
}
