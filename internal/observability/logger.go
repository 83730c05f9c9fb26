// Package observability builds the process-wide zap logger from
// configuration.
package observability

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lamaranku/lamaranku-api/config"
)

// NewLogger constructs a zap logger honoring the configured level and
// format. Production builds get JSON sampling defaults; anything else gets
// the human-readable development config.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Observability.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Observability.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.Observability.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.With(zap.String("environment", cfg.Environment)), nil
}
