package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/you/regsvc/internal/config"
	httpx "github.com/you/regsvc/internal/http"
	"github.com/you/regsvc/internal/http/handlers"
)

// Run wires the service together and serves HTTP until the listener fails.
func Run(cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	rh := handlers.NewRegistrationHandlers(c.RegistrationSvc, c.VerificationSvc)
	r := httpx.BuildRouter(rh)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
