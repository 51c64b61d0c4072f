package account

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain/mocks"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/auth"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

// stubJWTService issues a fixed token without signing
type stubJWTService struct {
	token string
	err   error
}

func (s *stubJWTService) GenerateToken(accountID, nickname string) (string, error) {
	return s.token, s.err
}

func (s *stubJWTService) ValidateToken(tokenString string) (*auth.Claims, error) {
	return nil, errors.New("not implemented")
}

func newTestAccountUseCase(t *testing.T) (*AccountUseCase, *mocks.MockAccountRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)

	uc := &AccountUseCase{
		accountRepo: mockAccountRepo,
		jwtService:  &stubJWTService{token: "test-token"},
		logger:      logger.NewLogger("test", "debug"),
	}
	return uc, mockAccountRepo
}

func TestCreateWithNicknameValidation(t *testing.T) {
	uc, _ := newTestAccountUseCase(t)

	tests := []struct {
		name     string
		nickname string
	}{
		{"Empty", ""},
		{"Whitespace_Only", "   "},
		{"Too_Long", string(make([]byte, 65))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, token, err := uc.CreateWithNickname(tt.nickname)
			assert.Nil(t, account)
			assert.Empty(t, token)
			assert.True(t, domain.IsCode(err, domain.ErrCodeBadNickname))
		})
	}
}

func TestCreateWithNicknameDuplicate(t *testing.T) {
	uc, mockAccountRepo := newTestAccountUseCase(t)

	existing := "lucky_fox"
	mockAccountRepo.EXPECT().GetByNickname("lucky_fox").Return(&domain.Account{ID: 1, Nickname: &existing}, nil)

	account, token, err := uc.CreateWithNickname("lucky_fox")
	assert.Nil(t, account)
	assert.Empty(t, token)
	assert.True(t, domain.IsCode(err, domain.ErrCodeDuplicateNickname))
}

func TestCreateWithNicknameStartsWithCoins(t *testing.T) {
	uc, mockAccountRepo := newTestAccountUseCase(t)

	mockAccountRepo.EXPECT().GetByNickname("lucky_fox").Return(nil, nil)
	mockAccountRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *domain.Account) error {
		assert.Equal(t, domain.StartingCoins, a.Coins)
		assert.Equal(t, "lucky_fox", *a.Nickname)
		assert.Nil(t, a.BestScore)
		a.ID = 42
		return nil
	})

	account, token, err := uc.CreateWithNickname("  lucky_fox  ")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), account.ID)
	assert.Equal(t, "test-token", token)
}

func TestGetAccountInfoWithRank(t *testing.T) {
	uc, mockAccountRepo := newTestAccountUseCase(t)

	best := 0.125
	nickname := "lucky_fox"
	mockAccountRepo.EXPECT().GetByID(int64(42)).Return(&domain.Account{
		ID:        42,
		Nickname:  &nickname,
		BestScore: &best,
		Coins:     80,
	}, nil)
	mockAccountRepo.EXPECT().RankOf(0.125).Return(int64(3), nil)

	account, rank, err := uc.GetAccountInfo(42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), account.ID)
	assert.Equal(t, int64(3), *rank)
}

func TestGetAccountInfoNoScoreNoRank(t *testing.T) {
	uc, mockAccountRepo := newTestAccountUseCase(t)

	nickname := "fresh_player"
	mockAccountRepo.EXPECT().GetByID(int64(42)).Return(&domain.Account{
		ID:       42,
		Nickname: &nickname,
		Coins:    100,
	}, nil)

	account, rank, err := uc.GetAccountInfo(42)
	assert.NoError(t, err)
	assert.NotNil(t, account)
	assert.Nil(t, rank)
}

func TestGetWalletAccountNotFound(t *testing.T) {
	uc, mockAccountRepo := newTestAccountUseCase(t)

	mockAccountRepo.EXPECT().GetByID(int64(999)).Return(nil, nil)

	coins, err := uc.GetWallet(999)
	assert.Zero(t, coins)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAccountNotFound))
}
