package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

const leaderboardLimit = 100

// RankingHandler handles HTTP requests for live and historical leaderboards
type RankingHandler struct {
	accountUseCase    domain.AccountUseCase
	tournamentUseCase domain.TournamentUseCase
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(
	accountUseCase domain.AccountUseCase,
	tournamentUseCase domain.TournamentUseCase,
) *RankingHandler {
	return &RankingHandler{
		accountUseCase:    accountUseCase,
		tournamentUseCase: tournamentUseCase,
	}
}

// RankingEntry represents one live leaderboard row
type RankingEntry struct {
	Rank      int     `json:"rank" example:"1"`
	Nickname  string  `json:"nickname" example:"lucky_fox"`
	BestScore float64 `json:"best_score" example:"0.015625"`
}

// GetRanking handles getting the live leaderboard
// @Summary Get the live leaderboard
// @Description Top accounts of the current window, rarest best score first
// @Tags ranking
// @Produce json
// @Success 200 {array} RankingEntry
// @Router /ranking [get]
func (h *RankingHandler) GetRanking(c *gin.Context) {
	accounts, err := h.accountUseCase.GetLeaderboard(leaderboardLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, liveRankingEntries(accounts))
}

// liveRankingEntries assigns dense ranks over accounts already sorted by best
// score ascending: ties share a rank, a strictly better score never ranks
// worse.
func liveRankingEntries(accounts []*domain.Account) []RankingEntry {
	entries := make([]RankingEntry, 0, len(accounts))
	rank := 0
	var prev float64
	for i, a := range accounts {
		if i == 0 || *a.BestScore != prev {
			rank++
			prev = *a.BestScore
		}
		entries = append(entries, RankingEntry{
			Rank:      rank,
			Nickname:  *a.Nickname,
			BestScore: *a.BestScore,
		})
	}
	return entries
}

// GetDailyRanking handles getting a closed window's frozen leaderboard
// @Summary Get a daily leaderboard
// @Description Frozen leaderboard of a closed window, by date (YYYY-MM-DD)
// @Tags ranking
// @Produce json
// @Param date path string true "Window date" example(2026-08-30)
// @Success 200 {array} domain.DailyScore
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /ranking/daily/{date} [get]
func (h *RankingHandler) GetDailyRanking(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Date must be YYYY-MM-DD", http.StatusBadRequest, err))
		return
	}

	scores, err := h.tournamentUseCase.GetDailyScores(date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scores)
}
