package repository

import (
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"

	"gorm.io/gorm"
)

// PlayRepository implements domain.PlayRepository
type PlayRepository struct {
	db *gorm.DB
}

// NewPlayRepository creates a new play repository
func NewPlayRepository(db *gorm.DB) domain.PlayRepository {
	return &PlayRepository{db: db}
}

// Create appends a play record
func (r *PlayRepository) Create(play *domain.Play) error {
	play.CreatedAt = time.Now()
	return r.db.Create(play).Error
}

// GetByAccountID retrieves plays for an account with pagination
func (r *PlayRepository) GetByAccountID(accountID int64, limit, offset int) ([]*domain.Play, error) {
	var plays []*domain.Play
	result := r.db.Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&plays)
	if result.Error != nil {
		return nil, result.Error
	}
	return plays, nil
}

// CountParticipants counts distinct accounts that played in [from, to)
func (r *PlayRepository) CountParticipants(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Play{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Distinct("account_id").
		Count(&count).Error
	return count, err
}

// BestScoresInWindow aggregates each participant's minimum successful score
// in [from, to), ascending
func (r *PlayRepository) BestScoresInWindow(from, to time.Time, limit int) ([]domain.WindowScore, error) {
	var scores []domain.WindowScore
	err := r.db.Model(&domain.Play{}).
		Select("account_id, MIN(resulting_score) AS best_score").
		Where("created_at >= ? AND created_at < ? AND outcome = ?", from, to, domain.PlayOutcomeSuccess).
		Group("account_id").
		Order("best_score ASC").
		Limit(limit).
		Scan(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// WithTransaction returns a repository bound to the given transaction
func (r *PlayRepository) WithTransaction(tx *gorm.DB) domain.PlayRepository {
	if tx == nil {
		return r
	}
	return &PlayRepository{db: tx}
}
