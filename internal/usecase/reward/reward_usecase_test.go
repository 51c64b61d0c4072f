package reward

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain/mocks"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/lock"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestRewardUseCase(t *testing.T) (*RewardUseCase, *mocks.MockAccountRepository, *mocks.MockRewardRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockRewardRepo := mocks.NewMockRewardRepository(ctrl)

	uc := &RewardUseCase{
		accountRepo: mockAccountRepo,
		rewardRepo:  mockRewardRepo,
		lockManager: lock.NewAccountLockManager(),
		db:          nil,
		logger:      logger.NewLogger("test", "debug"),
	}
	return uc, mockAccountRepo, mockRewardRepo
}

func rewardTestAccount(id int64) *domain.Account {
	nickname := "test_player"
	return &domain.Account{ID: id, Nickname: &nickname, Coins: 50}
}

func TestIssueAdRewardRequiresKey(t *testing.T) {
	uc, _, _ := newTestRewardUseCase(t)

	grant, err := uc.IssueAdReward(123, "")
	assert.Nil(t, grant)
	assert.True(t, domain.IsCode(err, domain.ErrCodeRequiredField))
}

func TestGrantPreconditionsCooldown(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockAccountRepo.EXPECT().GetByID(int64(123)).Return(rewardTestAccount(123), nil)
	mockRewardRepo.EXPECT().GetLatestGrantByAccountID(int64(123)).Return(&domain.RewardGrant{
		AccountID: 123,
		CreatedAt: time.Now().Add(-10 * time.Second),
	}, nil)

	err := uc.checkGrantPreconditions(mockAccountRepo, mockRewardRepo, 123, "key-1")
	assert.True(t, domain.IsCode(err, domain.ErrCodeRewardCooldown))

	appErr, _ := domain.IsAppError(err)
	assert.Equal(t, 429, appErr.HTTPStatus)
	assert.Contains(t, appErr.Details, "retry_after_seconds")
}

func TestGrantPreconditionsDuplicateKey(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockAccountRepo.EXPECT().GetByID(int64(123)).Return(rewardTestAccount(123), nil)
	mockRewardRepo.EXPECT().GetLatestGrantByAccountID(int64(123)).Return(&domain.RewardGrant{
		AccountID: 123,
		CreatedAt: time.Now().Add(-time.Minute),
	}, nil)
	mockRewardRepo.EXPECT().GetGrantByKey("key-1").Return(&domain.RewardGrant{
		AccountID:      123,
		IdempotencyKey: "key-1",
	}, nil)

	err := uc.checkGrantPreconditions(mockAccountRepo, mockRewardRepo, 123, "key-1")
	assert.True(t, domain.IsCode(err, domain.ErrCodeDuplicateReward))
}

func TestIssueInTxCreditsOnce(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockRewardRepo.EXPECT().CreateGrant(gomock.Any()).DoAndReturn(func(g *domain.RewardGrant) error {
		assert.Equal(t, int64(123), g.AccountID)
		assert.Equal(t, domain.AdRewardCoins, g.Amount)
		assert.Equal(t, "key-1", g.IdempotencyKey)
		return nil
	})
	mockAccountRepo.EXPECT().CreditCoins(int64(123), domain.AdRewardCoins).Return(nil)

	grant, err := uc.issueInTx(mockAccountRepo, mockRewardRepo, 123, "key-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.AdRewardCoins, grant.Amount)
}

func TestIssueInTxDuplicateKeyRace(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockRewardRepo.EXPECT().CreateGrant(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	grant, err := uc.issueInTx(mockAccountRepo, mockRewardRepo, 123, "key-1")
	assert.Nil(t, grant)
	assert.True(t, domain.IsCode(err, domain.ErrCodeDuplicateReward))
}

func TestClaimReferralRejectsSelf(t *testing.T) {
	uc, _, _ := newTestRewardUseCase(t)

	claim, err := uc.ClaimReferral(123, 123)
	assert.Nil(t, claim)
	assert.True(t, domain.IsCode(err, domain.ErrCodeSelfReferral))
}

func TestClaimPreconditionsReferrerNotFound(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockAccountRepo.EXPECT().GetByID(int64(123)).Return(rewardTestAccount(123), nil)
	mockAccountRepo.EXPECT().GetByID(int64(999)).Return(nil, nil)

	err := uc.checkClaimPreconditions(mockAccountRepo, mockRewardRepo, 123, 999)
	assert.True(t, domain.IsCode(err, domain.ErrCodeReferrerNotFound))
}

func TestClaimPreconditionsAlreadyClaimed(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockAccountRepo.EXPECT().GetByID(int64(123)).Return(rewardTestAccount(123), nil)
	mockAccountRepo.EXPECT().GetByID(int64(42)).Return(rewardTestAccount(42), nil)
	mockRewardRepo.EXPECT().GetClaimByClaimantID(int64(123)).Return(&domain.ReferralClaim{
		ClaimantID: 123,
		ReferrerID: 7,
	}, nil)

	// a second claim is rejected even against a different referrer
	err := uc.checkClaimPreconditions(mockAccountRepo, mockRewardRepo, 123, 42)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyClaimed))
}

func TestClaimInTxCreditsBothParties(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockRewardRepo.EXPECT().CreateClaim(gomock.Any()).DoAndReturn(func(c *domain.ReferralClaim) error {
		assert.Equal(t, int64(123), c.ClaimantID)
		assert.Equal(t, int64(42), c.ReferrerID)
		return nil
	})
	mockAccountRepo.EXPECT().CreditCoins(int64(42), domain.ReferrerRewardCoins).Return(nil)
	mockAccountRepo.EXPECT().IncrementReferralPoints(int64(42)).Return(nil)
	mockAccountRepo.EXPECT().CreditCoins(int64(123), domain.ClaimantRewardCoins).Return(nil)

	claim, err := uc.claimInTx(mockAccountRepo, mockRewardRepo, 123, 42)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReferrerRewardCoins, claim.Amount)
}

func TestClaimInTxDuplicateRace(t *testing.T) {
	uc, mockAccountRepo, mockRewardRepo := newTestRewardUseCase(t)

	mockRewardRepo.EXPECT().CreateClaim(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	claim, err := uc.claimInTx(mockAccountRepo, mockRewardRepo, 123, 42)
	assert.Nil(t, claim)
	assert.True(t, domain.IsCode(err, domain.ErrCodeAlreadyClaimed))
}
