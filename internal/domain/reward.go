package domain

import (
	"time"

	"gorm.io/gorm"
)

// RewardGrant records one successful rewarded-action credit. The unique
// idempotency key is the proof the credit already happened: a second insert
// with the same key must fail at the database.
type RewardGrant struct {
	ID             int64     `json:"grant_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	AccountID      int64     `json:"account_id" gorm:"index;not null;type:bigint"`
	Amount         int       `json:"amount" gorm:"not null"`
	IdempotencyKey string    `json:"idempotency_key" gorm:"uniqueIndex;type:varchar(64);not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`

	Account Account `json:"-" gorm:"foreignKey:AccountID"`
}

// TableName specifies the table name for RewardGrant
func (r RewardGrant) TableName() string {
	return "reward_grants"
}

// ReferralClaim records a claimant's one-and-only referral claim. The unique
// claimant_id enforces "at most once ever", no matter how many referrers are
// attempted.
type ReferralClaim struct {
	ID         int64     `json:"claim_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	ClaimantID int64     `json:"claimant_id" gorm:"uniqueIndex;not null;type:bigint"`
	ReferrerID int64     `json:"referrer_id" gorm:"index;not null;type:bigint"`
	Amount     int       `json:"amount" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for ReferralClaim
func (r ReferralClaim) TableName() string {
	return "referral_claims"
}

// RewardRepository defines the interface for reward grants and referral claims
type RewardRepository interface {
	CreateGrant(grant *RewardGrant) error
	GetGrantByKey(idempotencyKey string) (*RewardGrant, error)
	GetLatestGrantByAccountID(accountID int64) (*RewardGrant, error)

	CreateClaim(claim *ReferralClaim) error
	GetClaimByClaimantID(claimantID int64) (*ReferralClaim, error)

	WithTransaction(tx *gorm.DB) RewardRepository
}

// RewardUseCase defines the interface for reward and referral business logic
type RewardUseCase interface {
	IssueAdReward(accountID int64, idempotencyKey string) (*RewardGrant, error)
	ClaimReferral(claimantID, referrerID int64) (*ReferralClaim, error)
}
