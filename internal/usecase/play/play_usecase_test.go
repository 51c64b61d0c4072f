package play

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain/mocks"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/lock"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestPlayUseCase(t *testing.T, rng func() float64) (*PlayUseCase, *mocks.MockAccountRepository, *mocks.MockPlayRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockPlayRepo := mocks.NewMockPlayRepository(ctrl)

	uc := &PlayUseCase{
		accountRepo: mockAccountRepo,
		playRepo:    mockPlayRepo,
		lockManager: lock.NewAccountLockManager(),
		db:          nil,
		logger:      logger.NewLogger("test", "debug"),
		rng:         rng,
	}
	return uc, mockAccountRepo, mockPlayRepo
}

func testAccount(coins int, bestScore *float64) *domain.Account {
	nickname := "test_player"
	return &domain.Account{
		ID:        123,
		Nickname:  &nickname,
		BestScore: bestScore,
		Coins:     coins,
	}
}

func TestPlayRejectsInvalidProbability(t *testing.T) {
	uc, _, _ := newTestPlayUseCase(t, func() float64 { return 0.5 })

	tests := []struct {
		name        string
		probability float64
	}{
		{"Zero", 0},
		{"One", 1},
		{"Negative", -0.1},
		{"Above_One", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Play(123, tt.probability, 1.0)
			assert.Nil(t, result)
			assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidProbability))
		})
	}
}

func TestPlaySuccessImprovesBestScore(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo := newTestPlayUseCase(t, func() float64 { return 0.1 })

	mockAccountRepo.EXPECT().GetByIDForUpdate(int64(123)).Return(testAccount(10, nil), nil)
	mockAccountRepo.EXPECT().DebitCoins(int64(123), domain.PlayCost).Return(nil)
	mockAccountRepo.EXPECT().UpdateBestScore(int64(123), 0.5).Return(nil)
	mockPlayRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Play) error {
		assert.Equal(t, int64(123), p.AccountID)
		assert.Equal(t, domain.PlayOutcomeSuccess, p.Outcome)
		assert.Equal(t, 0.5, p.ResultingScore)
		return nil
	})

	result, err := uc.playInTx(mockAccountRepo, mockPlayRepo, 123, 0.5, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, domain.PlayOutcomeSuccess, result.Outcome)
	assert.Equal(t, 0.5, result.NewScore)
	assert.NotNil(t, result.BestScore)
	assert.Equal(t, 0.5, *result.BestScore)
	assert.Equal(t, 9, result.Coins)
}

func TestPlaySuccessKeepsBetterBestScore(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo := newTestPlayUseCase(t, func() float64 { return 0.1 })

	best := 0.1
	mockAccountRepo.EXPECT().GetByIDForUpdate(int64(123)).Return(testAccount(10, &best), nil)
	mockAccountRepo.EXPECT().DebitCoins(int64(123), domain.PlayCost).Return(nil)
	mockPlayRepo.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := uc.playInTx(mockAccountRepo, mockPlayRepo, 123, 0.5, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, result.NewScore)
	assert.Equal(t, 0.1, *result.BestScore)
}

func TestPlayFailureResetsScore(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo := newTestPlayUseCase(t, func() float64 { return 0.9 })

	mockAccountRepo.EXPECT().GetByIDForUpdate(int64(123)).Return(testAccount(10, nil), nil)
	mockAccountRepo.EXPECT().DebitCoins(int64(123), domain.PlayCost).Return(nil)
	mockPlayRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Play) error {
		assert.Equal(t, domain.PlayOutcomeFail, p.Outcome)
		assert.Equal(t, 1.0, p.ResultingScore)
		return nil
	})

	result, err := uc.playInTx(mockAccountRepo, mockPlayRepo, 123, 0.5, 0.25)
	assert.NoError(t, err)
	assert.Equal(t, domain.PlayOutcomeFail, result.Outcome)
	assert.Equal(t, 1.0, result.NewScore)
	assert.Nil(t, result.BestScore)
	assert.Equal(t, 9, result.Coins)
}

func TestPlayRejectsWhenOutOfCoins(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo := newTestPlayUseCase(t, func() float64 { return 0.1 })

	mockAccountRepo.EXPECT().GetByIDForUpdate(int64(123)).Return(testAccount(0, nil), nil)

	result, err := uc.playInTx(mockAccountRepo, mockPlayRepo, 123, 0.5, 1.0)
	assert.Nil(t, result)
	assert.True(t, domain.IsCode(err, domain.ErrCodeNoCoins))
}

func TestPlayAccountNotFound(t *testing.T) {
	uc, mockAccountRepo, mockPlayRepo := newTestPlayUseCase(t, func() float64 { return 0.1 })

	mockAccountRepo.EXPECT().GetByIDForUpdate(int64(999)).Return(nil, nil)

	result, err := uc.playInTx(mockAccountRepo, mockPlayRepo, 999, 0.5, 1.0)
	assert.Nil(t, result)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAccountNotFound))
}

func TestDrawCompounding(t *testing.T) {
	tests := []struct {
		name            string
		roll            float64
		probability     float64
		previousScore   float64
		expectedOutcome domain.PlayOutcome
		expectedScore   float64
	}{
		{"Success_Multiplies_Down", 0.4, 0.5, 1.0, domain.PlayOutcomeSuccess, 0.5},
		{"Success_Compounds", 0.1, 0.25, 0.5, domain.PlayOutcomeSuccess, 0.125},
		{"Failure_Resets", 0.6, 0.5, 0.125, domain.PlayOutcomeFail, 1.0},
		{"Boundary_Roll_Equal_Fails", 0.5, 0.5, 1.0, domain.PlayOutcomeFail, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestPlayUseCase(t, func() float64 { return tt.roll })

			outcome, score := uc.draw(tt.probability, tt.previousScore)
			assert.Equal(t, tt.expectedOutcome, outcome)
			assert.Equal(t, tt.expectedScore, score)
		})
	}
}

func TestGetHistoryClampsPagination(t *testing.T) {
	uc, _, mockPlayRepo := newTestPlayUseCase(t, func() float64 { return 0.5 })

	tests := []struct {
		name           string
		limit          int
		offset         int
		expectedLimit  int
		expectedOffset int
	}{
		{"Defaults_On_Zero", 0, 0, 20, 0},
		{"Capped_At_Max", 500, 10, 100, 10},
		{"Negative_Offset_Zeroed", 20, -5, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPlayRepo.EXPECT().GetByAccountID(int64(123), tt.expectedLimit, tt.expectedOffset).Return([]*domain.Play{
				{ID: 1, AccountID: 123, ResultingScore: 0.5, ChosenProbability: 0.5, Outcome: domain.PlayOutcomeSuccess},
			}, nil)

			plays, err := uc.GetHistory(123, tt.limit, tt.offset)
			assert.NoError(t, err)
			assert.Len(t, plays, 1)
		})
	}
}
