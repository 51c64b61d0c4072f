package tournament

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ruddnjs9605/rank-my-luck/internal/config"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain/mocks"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTournamentConfig() config.TournamentConfig {
	return config.TournamentConfig{
		AnchorHour:     22,
		AnchorMinute:   0,
		Timezone:       "Asia/Seoul",
		PrizeThreshold: 1000,
		MaxPrizePool:   50000,
		DailyCoinFloor: 100,
		RetentionDays:  30,
		LeaderboardTop: 100,
	}
}

func newTestTournamentUseCase(t *testing.T) (*TournamentUseCase, *mocks.MockAccountRepository, *mocks.MockPlayRepository, *mocks.MockTournamentRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockPlayRepo := mocks.NewMockPlayRepository(ctrl)
	mockTournamentRepo := mocks.NewMockTournamentRepository(ctrl)

	location, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	uc := &TournamentUseCase{
		accountRepo:    mockAccountRepo,
		playRepo:       mockPlayRepo,
		tournamentRepo: mockTournamentRepo,
		db:             nil,
		logger:         logger.NewLogger("test", "debug"),
		cfg:            testTournamentConfig(),
		location:       location,
	}
	return uc, mockAccountRepo, mockPlayRepo, mockTournamentRepo
}

func TestWindowBounds(t *testing.T) {
	uc, _, _, _ := newTestTournamentUseCase(t)
	seoul, _ := time.LoadLocation("Asia/Seoul")

	tests := []struct {
		name          string
		now           time.Time
		expectedStart time.Time
	}{
		{
			name:          "Before_Anchor_Same_Day",
			now:           time.Date(2026, 8, 30, 10, 0, 0, 0, seoul),
			expectedStart: time.Date(2026, 8, 29, 22, 0, 0, 0, seoul),
		},
		{
			name:          "After_Anchor_Same_Day",
			now:           time.Date(2026, 8, 30, 23, 0, 0, 0, seoul),
			expectedStart: time.Date(2026, 8, 30, 22, 0, 0, 0, seoul),
		},
		{
			name:          "Exactly_At_Anchor",
			now:           time.Date(2026, 8, 30, 22, 0, 0, 0, seoul),
			expectedStart: time.Date(2026, 8, 30, 22, 0, 0, 0, seoul),
		},
		{
			name:          "UTC_Input_Converted",
			now:           time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC), // 23:00 in Seoul
			expectedStart: time.Date(2026, 8, 30, 22, 0, 0, 0, seoul),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := uc.WindowBounds(tt.now)
			assert.True(t, start.Equal(tt.expectedStart), "start %v != %v", start, tt.expectedStart)
			assert.True(t, end.Equal(tt.expectedStart.AddDate(0, 0, 1)))
		})
	}
}

func TestRankScoresDenseRanking(t *testing.T) {
	scores := rankScores("2026-08-30", []domain.WindowScore{
		{AccountID: 1, BestScore: 0.01},
		{AccountID: 2, BestScore: 0.01},
		{AccountID: 3, BestScore: 0.05},
		{AccountID: 4, BestScore: 0.05},
		{AccountID: 5, BestScore: 0.5},
	})

	require.Len(t, scores, 5)
	assert.Equal(t, 1, scores[0].Rank)
	assert.Equal(t, 1, scores[1].Rank)
	assert.Equal(t, 2, scores[2].Rank)
	assert.Equal(t, 2, scores[3].Rank)
	assert.Equal(t, 3, scores[4].Rank)

	for _, s := range scores {
		assert.Equal(t, "2026-08-30", s.Date)
	}
}

func TestCloseInTxAlreadyClosed(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo, mockTournamentRepo := newTestTournamentUseCase(t)

	start := time.Date(2026, 8, 30, 22, 0, 0, 0, uc.location)
	end := start.AddDate(0, 0, 1)

	mockTournamentRepo.EXPECT().GetRunByDate("2026-08-30").Return(&domain.DailyRun{
		Date: "2026-08-30",
	}, nil)

	result, err := uc.closeInTx(mockAccountRepo, mockPlayRepo, mockTournamentRepo, "2026-08-30", start, end)
	assert.Nil(t, result)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyClosed))
}

func TestCloseInTxBelowThresholdSkipsPayout(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo, mockTournamentRepo := newTestTournamentUseCase(t)

	start := time.Date(2026, 8, 30, 22, 0, 0, 0, uc.location)
	end := start.AddDate(0, 0, 1)

	mockTournamentRepo.EXPECT().GetRunByDate("2026-08-30").Return(nil, nil)
	mockPlayRepo.EXPECT().CountParticipants(start, end).Return(int64(500), nil)
	mockPlayRepo.EXPECT().BestScoresInWindow(start, end, 100).Return([]domain.WindowScore{
		{AccountID: 7, BestScore: 0.02},
	}, nil)
	mockTournamentRepo.EXPECT().CreateRun(gomock.Any()).DoAndReturn(func(run *domain.DailyRun) error {
		assert.Equal(t, domain.RunPayoutStatusSkipped, run.PayoutStatus)
		assert.Equal(t, int64(0), run.PrizePool)
		assert.Nil(t, run.WinnerAccountID)
		return nil
	})
	mockTournamentRepo.EXPECT().CreateScores(gomock.Any()).Return(nil)
	mockAccountRepo.EXPECT().ResetAllBestScores().Return(nil)
	mockAccountRepo.EXPECT().TopUpCoinsBelow(100).Return(int64(12), nil)
	mockTournamentRepo.EXPECT().PruneBefore(gomock.Any()).Return(nil)

	result, err := uc.closeInTx(mockAccountRepo, mockPlayRepo, mockTournamentRepo, "2026-08-30", start, end)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.PrizePool)
	assert.Nil(t, result.WinnerID)
	assert.Equal(t, int64(12), result.ToppedUp)
	assert.Equal(t, 1, result.Snapshotted)
}

func TestCloseInTxAboveThresholdQueuesPayout(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo, mockTournamentRepo := newTestTournamentUseCase(t)

	start := time.Date(2026, 8, 30, 22, 0, 0, 0, uc.location)
	end := start.AddDate(0, 0, 1)

	mockTournamentRepo.EXPECT().GetRunByDate("2026-08-30").Return(nil, nil)
	mockPlayRepo.EXPECT().CountParticipants(start, end).Return(int64(1200), nil)
	mockPlayRepo.EXPECT().BestScoresInWindow(start, end, 100).Return([]domain.WindowScore{
		{AccountID: 7, BestScore: 0.001},
		{AccountID: 8, BestScore: 0.02},
	}, nil)
	mockTournamentRepo.EXPECT().CreateRun(gomock.Any()).DoAndReturn(func(run *domain.DailyRun) error {
		assert.Equal(t, domain.RunPayoutStatusPending, run.PayoutStatus)
		assert.Equal(t, int64(1200), run.PrizePool)
		assert.Equal(t, int64(7), *run.WinnerAccountID)
		assert.Equal(t, 0.001, *run.WinnerBestScore)
		return nil
	})
	mockTournamentRepo.EXPECT().CreateScores(gomock.Any()).Return(nil)
	mockTournamentRepo.EXPECT().CreatePayout(gomock.Any()).DoAndReturn(func(p *domain.PayoutRecord) error {
		assert.Equal(t, int64(7), p.AccountID)
		assert.Equal(t, int64(1200), p.Points)
		assert.Equal(t, domain.PayoutStatusPending, p.Status)
		assert.NotEmpty(t, p.IdempotencyKey)
		return nil
	})
	mockAccountRepo.EXPECT().ResetAllBestScores().Return(nil)
	mockAccountRepo.EXPECT().TopUpCoinsBelow(100).Return(int64(0), nil)
	mockTournamentRepo.EXPECT().PruneBefore(gomock.Any()).Return(nil)

	result, err := uc.closeInTx(mockAccountRepo, mockPlayRepo, mockTournamentRepo, "2026-08-30", start, end)
	assert.NoError(t, err)
	assert.Equal(t, int64(1200), result.PrizePool)
	assert.Equal(t, int64(7), *result.WinnerID)
}

func TestCloseInTxPrizePoolCapped(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo, mockTournamentRepo := newTestTournamentUseCase(t)

	start := time.Date(2026, 8, 30, 22, 0, 0, 0, uc.location)
	end := start.AddDate(0, 0, 1)

	mockTournamentRepo.EXPECT().GetRunByDate("2026-08-30").Return(nil, nil)
	mockPlayRepo.EXPECT().CountParticipants(start, end).Return(int64(80000), nil)
	mockPlayRepo.EXPECT().BestScoresInWindow(start, end, 100).Return([]domain.WindowScore{
		{AccountID: 7, BestScore: 0.001},
	}, nil)
	mockTournamentRepo.EXPECT().CreateRun(gomock.Any()).DoAndReturn(func(run *domain.DailyRun) error {
		assert.Equal(t, int64(50000), run.PrizePool)
		return nil
	})
	mockTournamentRepo.EXPECT().CreateScores(gomock.Any()).Return(nil)
	mockTournamentRepo.EXPECT().CreatePayout(gomock.Any()).Return(nil)
	mockAccountRepo.EXPECT().ResetAllBestScores().Return(nil)
	mockAccountRepo.EXPECT().TopUpCoinsBelow(100).Return(int64(0), nil)
	mockTournamentRepo.EXPECT().PruneBefore(gomock.Any()).Return(nil)

	result, err := uc.closeInTx(mockAccountRepo, mockPlayRepo, mockTournamentRepo, "2026-08-30", start, end)
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), result.PrizePool)
}

func TestGenerateIdempotencyKeyUnique(t *testing.T) {
	a, err := generateIdempotencyKey()
	require.NoError(t, err)
	b, err := generateIdempotencyKey()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "payout-")
}
