package main

import (
	"context"
	"log/slog"
	"os"

	"avia-booking/internal/flight/handler"
	"avia-booking/internal/flight/repository"
	"avia-booking/internal/flight/usecase"
	"avia-booking/internal/httpx"
	"avia-booking/internal/httpx/middleware"
	"avia-booking/internal/infra/db"
	"avia-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
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

func newDB(lc fx.Lifecycle, cfg config.FlightConfig) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on process environment")
	}

	app := fx.New(
		fx.Provide(
			config.LoadFlight,
			newDB,
			repository.NewFlightRepository,
			usecase.NewFlightQueries,
			handler.NewFlightHandler,
			func(cfg config.FlightConfig) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			handler.NewRouter,
			func(lc fx.Lifecycle, engine *gin.Engine, cfg config.FlightConfig, logger *slog.Logger) {
				httpx.StartServer(lc, engine, cfg.Server.Port, logger)
			},
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start flight service", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop flight service", "error", err)
	}

	slog.Info("flight service stopped")
}
