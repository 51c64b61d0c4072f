package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUseCase serves a fixed leaderboard
type stubAccountUseCase struct {
	accounts []*domain.Account
	err      error
}

func (s *stubAccountUseCase) CreateWithNickname(nickname string) (*domain.Account, string, error) {
	return nil, "", nil
}

func (s *stubAccountUseCase) GetAccountInfo(accountID int64) (*domain.Account, *int64, error) {
	return nil, nil, nil
}

func (s *stubAccountUseCase) GetWallet(accountID int64) (int, error) {
	return 0, nil
}

func (s *stubAccountUseCase) GetLeaderboard(limit int) ([]*domain.Account, error) {
	return s.accounts, s.err
}

func leaderboardAccount(id int64, nickname string, bestScore float64) *domain.Account {
	return &domain.Account{ID: id, Nickname: &nickname, BestScore: &bestScore}
}

func TestLiveRankingEntriesDenseRanking(t *testing.T) {
	entries := liveRankingEntries([]*domain.Account{
		leaderboardAccount(1, "first", 0.01),
		leaderboardAccount(2, "also_first", 0.01),
		leaderboardAccount(3, "second", 0.05),
		leaderboardAccount(4, "third", 0.5),
	})

	require.Len(t, entries, 4)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].Rank)
	assert.Equal(t, 2, entries[2].Rank)
	assert.Equal(t, 3, entries[3].Rank)
}

func TestLiveRankingBetterScoreNeverRanksWorse(t *testing.T) {
	entries := liveRankingEntries([]*domain.Account{
		leaderboardAccount(1, "a", 0.001),
		leaderboardAccount(2, "b", 0.001),
		leaderboardAccount(3, "c", 0.02),
		leaderboardAccount(4, "d", 0.02),
		leaderboardAccount(5, "e", 0.02),
		leaderboardAccount(6, "f", 0.3),
		leaderboardAccount(7, "g", 1.0),
	})

	for i := range entries {
		for j := range entries {
			if entries[i].BestScore < entries[j].BestScore {
				assert.LessOrEqual(t, entries[i].Rank, entries[j].Rank,
					"score %f ranked %d behind score %f ranked %d",
					entries[i].BestScore, entries[i].Rank, entries[j].BestScore, entries[j].Rank)
			}
			if entries[i].BestScore == entries[j].BestScore {
				assert.Equal(t, entries[i].Rank, entries[j].Rank)
			}
		}
	}
}

func TestLiveRankingEntriesEmpty(t *testing.T) {
	entries := liveRankingEntries(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetRankingEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewRankingHandler(&stubAccountUseCase{accounts: []*domain.Account{
		leaderboardAccount(1, "lucky_fox", 0.015625),
		leaderboardAccount(2, "second_best", 0.125),
	}}, nil)

	router := gin.New()
	router.GET("/ranking", h.GetRanking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []RankingEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, RankingEntry{Rank: 1, Nickname: "lucky_fox", BestScore: 0.015625}, entries[0])
	assert.Equal(t, RankingEntry{Rank: 2, Nickname: "second_best", BestScore: 0.125}, entries[1])
}
