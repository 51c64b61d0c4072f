package reward

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/lock"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RewardUseCase issues idempotent ad-reward credits and one-shot referral
// claims. Both rely on unique indexes (idempotency key, claimant id) as the
// final arbiter under concurrent retries.
type RewardUseCase struct {
	accountRepo domain.AccountRepository
	rewardRepo  domain.RewardRepository
	lockManager *lock.AccountLockManager
	db          *gorm.DB
	logger      *logger.Logger
}

// NewRewardUseCase creates a new reward usecase
func NewRewardUseCase(
	accountRepo domain.AccountRepository,
	rewardRepo domain.RewardRepository,
	lockManager *lock.AccountLockManager,
	db *gorm.DB,
	logger *logger.Logger,
) domain.RewardUseCase {
	return &RewardUseCase{
		accountRepo: accountRepo,
		rewardRepo:  rewardRepo,
		lockManager: lockManager,
		db:          db,
		logger:      logger,
	}
}

// IssueAdReward credits a fixed coin amount for a rewarded action, exactly
// once per idempotency key
func (uc *RewardUseCase) IssueAdReward(accountID int64, idempotencyKey string) (*domain.RewardGrant, error) {
	if idempotencyKey == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Idempotency key is required", 400, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.lockManager.Lock(ctx, accountID); err != nil {
		return nil, domain.NewInternalError("Failed to serialize reward for account", err)
	}
	defer uc.lockManager.Unlock(accountID)

	if err := uc.checkGrantPreconditions(uc.accountRepo, uc.rewardRepo, accountID, idempotencyKey); err != nil {
		return nil, err
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	grant, err := uc.issueInTx(
		uc.accountRepo.WithTransaction(tx),
		uc.rewardRepo.WithTransaction(tx),
		accountID,
		idempotencyKey,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Ad reward issued",
		zap.Int64("account_id", accountID),
		zap.String("idempotency_key", idempotencyKey),
		zap.Int("amount", grant.Amount))

	return grant, nil
}

// checkGrantPreconditions rejects duplicates and too-frequent grants before
// any write happens. The unique index still backs the duplicate check under
// races.
func (uc *RewardUseCase) checkGrantPreconditions(
	accountRepo domain.AccountRepository,
	rewardRepo domain.RewardRepository,
	accountID int64,
	idempotencyKey string,
) error {
	account, err := accountRepo.GetByID(accountID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get account", 500, err)
	}
	if account == nil {
		return domain.NewAppError(domain.ErrCodeAccountNotFound, "Account not found", 404, nil)
	}

	latest, err := rewardRepo.GetLatestGrantByAccountID(accountID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check reward cooldown", 500, err)
	}
	if latest != nil {
		elapsed := time.Since(latest.CreatedAt)
		if elapsed < domain.RewardCooldown {
			retryAfter := int((domain.RewardCooldown - elapsed).Seconds()) + 1
			appErr := domain.NewAppError(domain.ErrCodeRewardCooldown, "Reward was granted too recently", 429, nil)
			appErr.Details = fmt.Sprintf("retry_after_seconds=%d", retryAfter)
			return appErr
		}
	}

	existing, err := rewardRepo.GetGrantByKey(idempotencyKey)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check idempotency key", 500, err)
	}
	if existing != nil {
		return domain.NewAppError(domain.ErrCodeDuplicateReward, "Reward already granted for this key", 409, nil)
	}

	return nil
}

// issueInTx inserts the grant and credits the coins as one unit
func (uc *RewardUseCase) issueInTx(
	accountRepo domain.AccountRepository,
	rewardRepo domain.RewardRepository,
	accountID int64,
	idempotencyKey string,
) (*domain.RewardGrant, error) {
	grant := &domain.RewardGrant{
		AccountID:      accountID,
		Amount:         domain.AdRewardCoins,
		IdempotencyKey: idempotencyKey,
	}
	if err := rewardRepo.CreateGrant(grant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewAppError(domain.ErrCodeDuplicateReward, "Reward already granted for this key", 409, err)
		}
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create reward grant", 500, err)
	}

	if err := accountRepo.CreditCoins(accountID, domain.AdRewardCoins); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to credit reward coins", 500, err)
	}

	return grant, nil
}

// ClaimReferral credits a referrer for bringing the claimant in, at most once
// per claimant ever
func (uc *RewardUseCase) ClaimReferral(claimantID, referrerID int64) (*domain.ReferralClaim, error) {
	if referrerID == claimantID {
		return nil, domain.NewAppError(domain.ErrCodeSelfReferral, "Cannot claim your own referral", 400, nil)
	}

	if err := uc.checkClaimPreconditions(uc.accountRepo, uc.rewardRepo, claimantID, referrerID); err != nil {
		return nil, err
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	claim, err := uc.claimInTx(
		uc.accountRepo.WithTransaction(tx),
		uc.rewardRepo.WithTransaction(tx),
		claimantID,
		referrerID,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Referral claimed",
		zap.Int64("claimant_id", claimantID),
		zap.Int64("referrer_id", referrerID))

	return claim, nil
}

// checkClaimPreconditions validates both parties and the one-claim-ever rule
func (uc *RewardUseCase) checkClaimPreconditions(
	accountRepo domain.AccountRepository,
	rewardRepo domain.RewardRepository,
	claimantID, referrerID int64,
) error {
	claimant, err := accountRepo.GetByID(claimantID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get claimant", 500, err)
	}
	if claimant == nil {
		return domain.NewAppError(domain.ErrCodeAccountNotFound, "Account not found", 404, nil)
	}

	referrer, err := accountRepo.GetByID(referrerID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get referrer", 500, err)
	}
	if referrer == nil {
		return domain.NewAppError(domain.ErrCodeReferrerNotFound, "Referrer not found", 404, nil)
	}

	existing, err := rewardRepo.GetClaimByClaimantID(claimantID)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check existing claim", 500, err)
	}
	if existing != nil {
		return domain.NewAppError(domain.ErrCodeAlreadyClaimed, "Referral already claimed", 409, nil)
	}

	return nil
}

// claimInTx inserts the claim and credits both parties as one unit
func (uc *RewardUseCase) claimInTx(
	accountRepo domain.AccountRepository,
	rewardRepo domain.RewardRepository,
	claimantID, referrerID int64,
) (*domain.ReferralClaim, error) {
	claim := &domain.ReferralClaim{
		ClaimantID: claimantID,
		ReferrerID: referrerID,
		Amount:     domain.ReferrerRewardCoins,
	}
	if err := rewardRepo.CreateClaim(claim); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewAppError(domain.ErrCodeAlreadyClaimed, "Referral already claimed", 409, err)
		}
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create referral claim", 500, err)
	}

	if err := accountRepo.CreditCoins(referrerID, domain.ReferrerRewardCoins); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to credit referrer", 500, err)
	}
	if err := accountRepo.IncrementReferralPoints(referrerID); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to increment referral points", 500, err)
	}

	if err := accountRepo.CreditCoins(claimantID, domain.ClaimantRewardCoins); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to credit claimant", 500, err)
	}

	return claim, nil
}
