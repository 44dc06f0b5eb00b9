package main

import (
	"context"
	"log/slog"
	"os"

	"avia-booking/internal/bonus/handler"
	"avia-booking/internal/bonus/repository"
	"avia-booking/internal/bonus/usecase"
	"avia-booking/internal/httpx"
	"avia-booking/internal/httpx/middleware"
	"avia-booking/internal/infra/db"
	"avia-booking/internal/pkg/clock"
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

func newDB(lc fx.Lifecycle, cfg config.BonusConfig) (*pgxpool.Pool, error) {
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
			config.LoadBonus,
			newDB,
			clock.NewRealClock,
			repository.NewPrivilegeRepository,
			usecase.NewPrivilegeUseCase,
			handler.NewPrivilegeHandler,
			func(cfg config.BonusConfig) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			handler.NewRouter,
			func(lc fx.Lifecycle, engine *gin.Engine, cfg config.BonusConfig, logger *slog.Logger) {
				httpx.StartServer(lc, engine, cfg.Server.Port, logger)
			},
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start bonus service", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop bonus service", "error", err)
	}

	slog.Info("bonus service stopped")
}
