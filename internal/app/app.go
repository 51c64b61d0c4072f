package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx context.Context
	cfg *configHolder
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx, cfg: &configHolder{}}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Rank My Luck Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	if err := a.setupViper(*path); err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitAccountLockManager,
			a.InitPointsService,
			a.InitRepository,
			a.InitAccountUseCase,
			a.InitPlayUseCase,
			a.InitRewardUseCase,
			a.InitTournamentUseCase,
			a.InitPayoutProcessor,
			a.InitErrorHandler,
			a.InitAccountHandler,
			a.InitPlayHandler,
			a.InitRewardHandler,
			a.InitRankingHandler,
			a.InitAdminHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.registerHooks),
	)

	app.Run()
}
