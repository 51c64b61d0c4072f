package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/auth"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/lock"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"github.com/ruddnjs9605/rank-my-luck/internal/usecase/account"
	"github.com/ruddnjs9605/rank-my-luck/internal/usecase/play"
	"github.com/ruddnjs9605/rank-my-luck/internal/usecase/reward"
	"github.com/ruddnjs9605/rank-my-luck/internal/usecase/tournament"
	"gorm.io/gorm"
)

func (a *application) InitAccountUseCase(
	ar domain.AccountRepository,
	jwt auth.JWTService,
	log *logger.Logger,
) domain.AccountUseCase {
	return account.NewAccountUseCase(ar, jwt, log)
}

func (a *application) InitPlayUseCase(
	ar domain.AccountRepository,
	pr domain.PlayRepository,
	lm *lock.AccountLockManager,
	db *gorm.DB,
	log *logger.Logger,
) domain.PlayUseCase {
	return play.NewPlayUseCase(ar, pr, lm, db, log)
}

func (a *application) InitRewardUseCase(
	ar domain.AccountRepository,
	rr domain.RewardRepository,
	lm *lock.AccountLockManager,
	db *gorm.DB,
	log *logger.Logger,
) domain.RewardUseCase {
	return reward.NewRewardUseCase(ar, rr, lm, db, log)
}

func (a *application) InitTournamentUseCase(
	ar domain.AccountRepository,
	pr domain.PlayRepository,
	tr domain.TournamentRepository,
	db *gorm.DB,
	log *logger.Logger,
) (domain.TournamentUseCase, error) {
	return tournament.NewTournamentUseCase(ar, pr, tr, db, log, a.cfg.config.Tournament)
}
