package payout

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain/mocks"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestProcessor(t *testing.T, dryRun bool) (domain.PayoutProcessor, *mocks.MockTournamentRepository, *mocks.MockAccountRepository, *mocks.MockPointsService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTournamentRepo := mocks.NewMockTournamentRepository(ctrl)
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockPointsService := mocks.NewMockPointsService(ctrl)

	p := NewProcessor(mockTournamentRepo, mockAccountRepo, mockPointsService, logger.NewLogger("test", "debug"), dryRun)
	return p, mockTournamentRepo, mockAccountRepo, mockPointsService
}

func payoutTestAccount(id int64, identityKey *string) *domain.Account {
	nickname := "winner"
	return &domain.Account{ID: id, Nickname: &nickname, IdentityKey: identityKey}
}

func pendingRecord(id, accountID int64, points int64, key string) *domain.PayoutRecord {
	return &domain.PayoutRecord{
		ID:             id,
		Date:           "2026-08-30",
		AccountID:      accountID,
		Points:         points,
		Status:         domain.PayoutStatusPending,
		IdempotencyKey: key,
	}
}

func TestDrainSendsWithPersistedKey(t *testing.T) {
	p, mockTournamentRepo, mockAccountRepo, mockPointsService := newTestProcessor(t, false)

	identityKey := "ext-user-1"
	mockTournamentRepo.EXPECT().GetPendingPayouts(100).Return([]*domain.PayoutRecord{
		pendingRecord(1, 7, 1200, "payout-abc"),
	}, nil)
	mockAccountRepo.EXPECT().GetByID(int64(7)).Return(payoutTestAccount(7, &identityKey), nil)
	mockPointsService.EXPECT().SendPoints(gomock.Any()).DoAndReturn(func(req domain.PointsTransferRequest) (domain.PointsTransferResponse, error) {
		assert.Equal(t, "ext-user-1", req.UserKey)
		assert.Equal(t, int64(1200), req.Points)
		assert.Equal(t, "payout-abc", req.IdempotencyKey)
		assert.Equal(t, "daily-prize-2026-08-30", req.Reason)
		return domain.PointsTransferResponse{TransferID: "tr-1", Status: "ok"}, nil
	})
	mockTournamentRepo.EXPECT().MarkPayoutSent(int64(1), gomock.Any()).Return(nil)

	result, err := p.Drain()
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestDrainFailsWithoutIdentity(t *testing.T) {
	p, mockTournamentRepo, mockAccountRepo, _ := newTestProcessor(t, false)

	mockTournamentRepo.EXPECT().GetPendingPayouts(100).Return([]*domain.PayoutRecord{
		pendingRecord(1, 7, 1200, "payout-abc"),
	}, nil)
	mockAccountRepo.EXPECT().GetByID(int64(7)).Return(payoutTestAccount(7, nil), nil)
	mockTournamentRepo.EXPECT().MarkPayoutFailed(int64(1), domain.ErrCodeNoExternalIdentity).Return(nil)

	result, err := p.Drain()
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Sent)
}

func TestDrainOneFailureDoesNotBlockOthers(t *testing.T) {
	p, mockTournamentRepo, mockAccountRepo, mockPointsService := newTestProcessor(t, false)

	identityKey1 := "ext-user-1"
	identityKey2 := "ext-user-2"
	mockTournamentRepo.EXPECT().GetPendingPayouts(100).Return([]*domain.PayoutRecord{
		pendingRecord(1, 7, 1200, "payout-a"),
		pendingRecord(2, 8, 900, "payout-b"),
	}, nil)

	mockAccountRepo.EXPECT().GetByID(int64(7)).Return(payoutTestAccount(7, &identityKey1), nil)
	mockPointsService.EXPECT().SendPoints(gomock.Any()).Return(domain.PointsTransferResponse{},
		&domain.PointsServiceError{StatusCode: 503, Code: "UNAVAILABLE", Message: "service unavailable"})
	mockTournamentRepo.EXPECT().MarkPayoutFailed(int64(1), gomock.Any()).Return(nil)

	mockAccountRepo.EXPECT().GetByID(int64(8)).Return(payoutTestAccount(8, &identityKey2), nil)
	mockPointsService.EXPECT().SendPoints(gomock.Any()).Return(domain.PointsTransferResponse{TransferID: "tr-2", Status: "ok"}, nil)
	mockTournamentRepo.EXPECT().MarkPayoutSent(int64(2), gomock.Any()).Return(nil)

	result, err := p.Drain()
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestDrainDryRunSkipsExternalCall(t *testing.T) {
	p, mockTournamentRepo, mockAccountRepo, _ := newTestProcessor(t, true)

	identityKey := "ext-user-1"
	mockTournamentRepo.EXPECT().GetPendingPayouts(100).Return([]*domain.PayoutRecord{
		pendingRecord(1, 7, 1200, "payout-abc"),
	}, nil)
	mockAccountRepo.EXPECT().GetByID(int64(7)).Return(payoutTestAccount(7, &identityKey), nil)
	mockTournamentRepo.EXPECT().MarkPayoutSent(int64(1), gomock.Any()).DoAndReturn(func(_ int64, payload domain.JSONB) error {
		assert.Equal(t, true, payload["dry_run"])
		return nil
	})

	result, err := p.Drain()
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestRedrive(t *testing.T) {
	p, mockTournamentRepo, _, _ := newTestProcessor(t, false)

	mockTournamentRepo.EXPECT().RedrivePayouts("2026-08-30").Return(int64(3), nil)

	reset, err := p.Redrive("2026-08-30")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), reset)
}
