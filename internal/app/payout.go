package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/payout"
)

func (a *application) InitPayoutProcessor(
	tournamentRepo domain.TournamentRepository,
	accountRepo domain.AccountRepository,
	pointsService domain.PointsService,
	log *logger.Logger,
) domain.PayoutProcessor {
	return payout.NewProcessor(tournamentRepo, accountRepo, pointsService, log, a.cfg.config.Points.DryRun)
}
