package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.AccountRepository, domain.PlayRepository, domain.RewardRepository, domain.TournamentRepository) {
	return repository.NewAccountRepository(db),
		repository.NewPlayRepository(db),
		repository.NewRewardRepository(db),
		repository.NewTournamentRepository(db)
}
