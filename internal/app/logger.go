package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/config"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.cfg.config.Log.Level)
}
