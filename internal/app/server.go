package app

import (
	"context"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/http"
	"github.com/ruddnjs9605/rank-my-luck/internal/http/handlers"
	"github.com/ruddnjs9605/rank-my-luck/internal/http/middleware"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/auth"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	accountHandler *handlers.AccountHandler,
	playHandler *handlers.PlayHandler,
	rewardHandler *handlers.RewardHandler,
	rankingHandler *handlers.RankingHandler,
	adminHandler *handlers.AdminHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.cfg.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(
		jwtService,
		accountHandler,
		playHandler,
		rewardHandler,
		rankingHandler,
		adminHandler,
		errorHandler,
		log,
		a.cfg.config.Admin.Token,
		port,
	)
}

// registerHooks starts the HTTP server and the payout processor with the fx
// lifecycle, and stops the processor cleanly on shutdown.
func (a *application) registerHooks(
	lc fx.Lifecycle,
	server *http.Server,
	processor domain.PayoutProcessor,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			processor.StartBackgroundProcessing()
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			processor.StopBackgroundProcessing()
			return log.Sync()
		},
	})
}
