package repository

import (
	"errors"
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements domain.AccountRepository
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepository{db: db}
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(id int64) (*domain.Account, error) {
	var account domain.Account
	result := r.db.Where("id = ?", id).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// GetByIDForUpdate retrieves an account by ID with a row lock
func (r *AccountRepository) GetByIDForUpdate(id int64) (*domain.Account, error) {
	var account domain.Account
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// GetByNickname retrieves an account by nickname
func (r *AccountRepository) GetByNickname(nickname string) (*domain.Account, error) {
	var account domain.Account
	result := r.db.Where("nickname = ?", nickname).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// GetByIdentityKey retrieves an account by its external identity link
func (r *AccountRepository) GetByIdentityKey(identityKey string) (*domain.Account, error) {
	var account domain.Account
	result := r.db.Where("identity_key = ?", identityKey).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// Create creates a new account
func (r *AccountRepository) Create(account *domain.Account) error {
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	return r.db.Create(account).Error
}

// Update updates an existing account
func (r *AccountRepository) Update(account *domain.Account) error {
	account.UpdatedAt = time.Now()
	return r.db.Save(account).Error
}

// DebitCoins decrements the balance, guarded so it can never go negative.
// Zero rows affected means the guard rejected the debit.
func (r *AccountRepository) DebitCoins(accountID int64, amount int) error {
	if amount <= 0 {
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Debit amount must be positive", 400, nil)
	}

	result := r.db.Model(&domain.Account{}).
		Where("id = ? AND coins >= ?", accountID, amount).
		Updates(map[string]interface{}{
			"coins":      gorm.Expr("coins - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewAppError(domain.ErrCodeInsufficientFunds, "Coin balance would go negative", 400, nil)
	}
	return nil
}

// CreditCoins increments the balance
func (r *AccountRepository) CreditCoins(accountID int64, amount int) error {
	if amount <= 0 {
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Credit amount must be positive", 400, nil)
	}

	result := r.db.Model(&domain.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"coins":      gorm.Expr("coins + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateBestScore persists a new best score
func (r *AccountRepository) UpdateBestScore(accountID int64, bestScore float64) error {
	return r.db.Model(&domain.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"best_score": bestScore,
			"updated_at": time.Now(),
		}).Error
}

// IncrementReferralPoints adds one referral point
func (r *AccountRepository) IncrementReferralPoints(accountID int64) error {
	return r.db.Model(&domain.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"referral_points": gorm.Expr("referral_points + 1"),
			"updated_at":      time.Now(),
		}).Error
}

// RankOf counts strictly better scores; ties share a rank
func (r *AccountRepository) RankOf(bestScore float64) (int64, error) {
	var better int64
	err := r.db.Model(&domain.Account{}).
		Where("best_score IS NOT NULL AND best_score < ?", bestScore).
		Count(&better).Error
	if err != nil {
		return 0, err
	}
	return better + 1, nil
}

// TopByBestScore returns the live leaderboard
func (r *AccountRepository) TopByBestScore(limit int) ([]*domain.Account, error) {
	var accounts []*domain.Account
	result := r.db.Where("nickname IS NOT NULL AND best_score IS NOT NULL").
		Order("best_score ASC").
		Limit(limit).
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

// ResetAllBestScores clears every best score for a fresh window
func (r *AccountRepository) ResetAllBestScores() error {
	return r.db.Model(&domain.Account{}).
		Where("best_score IS NOT NULL").
		Updates(map[string]interface{}{
			"best_score": nil,
			"updated_at": time.Now(),
		}).Error
}

// TopUpCoinsBelow raises balances below the floor up to it
func (r *AccountRepository) TopUpCoinsBelow(floor int) (int64, error) {
	result := r.db.Model(&domain.Account{}).
		Where("coins < ?", floor).
		Updates(map[string]interface{}{
			"coins":      floor,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// WithTransaction returns a repository bound to the given transaction
func (r *AccountRepository) WithTransaction(tx *gorm.DB) domain.AccountRepository {
	if tx == nil {
		return r
	}
	return &AccountRepository{db: tx}
}
