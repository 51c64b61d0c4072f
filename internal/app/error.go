package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/http/middleware"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
