package domain

import (
	"time"

	"gorm.io/gorm"
)

// Economy policy constants. Every coin amount the game hands out or takes is
// one of these, never an inline literal.
const (
	// PlayCost is debited once per wager attempt, win or lose.
	PlayCost = 1

	// StartingCoins is the balance a freshly created account begins with.
	StartingCoins = 100

	// AdRewardCoins is credited per successful rewarded-ad grant.
	AdRewardCoins = 20

	// ReferrerRewardCoins / ClaimantRewardCoins are credited when a referral
	// claim succeeds.
	ReferrerRewardCoins = 30
	ClaimantRewardCoins = 10

	// RewardCooldown is the minimum gap between two ad-reward grants for the
	// same account, independent of the idempotency check.
	RewardCooldown = 30 * time.Second
)

// Account represents a player in the system. BestScore is the lowest (rarest)
// cumulative probability the player has reached since the last window reset;
// nil means no successful play yet.
type Account struct {
	ID             int64     `json:"account_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Nickname       *string   `json:"nickname" gorm:"uniqueIndex;type:varchar(64)"`
	IdentityKey    *string   `json:"-" gorm:"uniqueIndex;type:varchar(128)"`
	BestScore      *float64  `json:"best_score" gorm:"type:double precision"`
	Coins          int       `json:"coins" gorm:"not null;default:0"`
	ReferralPoints int       `json:"referral_points" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Account
func (a Account) TableName() string {
	return "accounts"
}

// AccountRepository defines the interface for account data. Debit and credit
// are the Ledger primitives: both must run inside the caller's transaction so
// the balance change commits together with its co-occurring writes.
type AccountRepository interface {
	GetByID(id int64) (*Account, error)
	GetByIDForUpdate(id int64) (*Account, error)
	GetByNickname(nickname string) (*Account, error)
	GetByIdentityKey(identityKey string) (*Account, error)
	Create(account *Account) error
	Update(account *Account) error

	// DebitCoins fails with InsufficientFunds when the balance would go
	// negative. CreditCoins requires amount > 0.
	DebitCoins(accountID int64, amount int) error
	CreditCoins(accountID int64, amount int) error

	// UpdateBestScore persists a new best score for the account.
	UpdateBestScore(accountID int64, bestScore float64) error

	// IncrementReferralPoints adds one referral point to the account.
	IncrementReferralPoints(accountID int64) error

	// RankOf returns 1 + count of accounts whose best score is strictly
	// lower than the given score.
	RankOf(bestScore float64) (int64, error)

	// TopByBestScore returns the live leaderboard: accounts with a nickname
	// and a best score, ascending, limited.
	TopByBestScore(limit int) ([]*Account, error)

	// ResetAllBestScores sets every account's best score back to NULL.
	ResetAllBestScores() error

	// TopUpCoinsBelow raises every balance below floor to floor, never
	// lowering one above it. Returns the number of accounts topped up.
	TopUpCoinsBelow(floor int) (int64, error)

	WithTransaction(tx *gorm.DB) AccountRepository
}

// AccountUseCase defines the interface for account business logic
type AccountUseCase interface {
	CreateWithNickname(nickname string) (*Account, string, error)
	GetAccountInfo(accountID int64) (*Account, *int64, error)
	GetWallet(accountID int64) (int, error)
	GetLeaderboard(limit int) ([]*Account, error)
}
