package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/http/handlers"
)

func (a *application) InitAccountHandler(uc domain.AccountUseCase) *handlers.AccountHandler {
	return handlers.NewAccountHandler(uc)
}

func (a *application) InitPlayHandler(uc domain.PlayUseCase) *handlers.PlayHandler {
	return handlers.NewPlayHandler(uc)
}

func (a *application) InitRewardHandler(uc domain.RewardUseCase) *handlers.RewardHandler {
	return handlers.NewRewardHandler(uc)
}

func (a *application) InitRankingHandler(auc domain.AccountUseCase, tuc domain.TournamentUseCase) *handlers.RankingHandler {
	return handlers.NewRankingHandler(auc, tuc)
}

func (a *application) InitAdminHandler(tuc domain.TournamentUseCase, pp domain.PayoutProcessor) *handlers.AdminHandler {
	return handlers.NewAdminHandler(tuc, pp)
}
