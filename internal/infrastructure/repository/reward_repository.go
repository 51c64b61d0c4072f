package repository

import (
	"errors"
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"

	"gorm.io/gorm"
)

// RewardRepository implements domain.RewardRepository
type RewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *gorm.DB) domain.RewardRepository {
	return &RewardRepository{db: db}
}

// CreateGrant inserts a reward grant; the unique idempotency key makes a
// duplicate insert fail at the database
func (r *RewardRepository) CreateGrant(grant *domain.RewardGrant) error {
	grant.CreatedAt = time.Now()
	return r.db.Create(grant).Error
}

// GetGrantByKey retrieves a grant by idempotency key
func (r *RewardRepository) GetGrantByKey(idempotencyKey string) (*domain.RewardGrant, error) {
	var grant domain.RewardGrant
	result := r.db.Where("idempotency_key = ?", idempotencyKey).First(&grant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &grant, nil
}

// GetLatestGrantByAccountID retrieves the newest grant for an account
func (r *RewardRepository) GetLatestGrantByAccountID(accountID int64) (*domain.RewardGrant, error) {
	var grant domain.RewardGrant
	result := r.db.Where("account_id = ?", accountID).
		Order("created_at DESC").
		First(&grant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &grant, nil
}

// CreateClaim inserts a referral claim; the unique claimant_id makes a second
// claim fail at the database
func (r *RewardRepository) CreateClaim(claim *domain.ReferralClaim) error {
	claim.CreatedAt = time.Now()
	return r.db.Create(claim).Error
}

// GetClaimByClaimantID retrieves a claim by claimant
func (r *RewardRepository) GetClaimByClaimantID(claimantID int64) (*domain.ReferralClaim, error) {
	var claim domain.ReferralClaim
	result := r.db.Where("claimant_id = ?", claimantID).First(&claim)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &claim, nil
}

// WithTransaction returns a repository bound to the given transaction
func (r *RewardRepository) WithTransaction(tx *gorm.DB) domain.RewardRepository {
	if tx == nil {
		return r
	}
	return &RewardRepository{db: tx}
}
