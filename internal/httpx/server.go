package httpx

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// StartServer runs the gin engine inside the fx lifecycle so every service
// binary shares the same startup/shutdown shape.
func StartServer(lc fx.Lifecycle, engine *gin.Engine, port string, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}
