package repository

import (
	"errors"
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"

	"gorm.io/gorm"
)

// TournamentRepository implements domain.TournamentRepository
type TournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *gorm.DB) domain.TournamentRepository {
	return &TournamentRepository{db: db}
}

// CreateRun inserts the settlement record for a date; the unique date index
// is the close-idempotency guard
func (r *TournamentRepository) CreateRun(run *domain.DailyRun) error {
	run.CreatedAt = time.Now()
	return r.db.Create(run).Error
}

// GetRunByDate retrieves a settlement record by its date label
func (r *TournamentRepository) GetRunByDate(date string) (*domain.DailyRun, error) {
	var run domain.DailyRun
	result := r.db.Where("date = ?", date).First(&run)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &run, nil
}

// CreateScores writes the frozen leaderboard rows for a window
func (r *TournamentRepository) CreateScores(scores []*domain.DailyScore) error {
	if len(scores) == 0 {
		return nil
	}
	now := time.Now()
	for _, s := range scores {
		s.CreatedAt = now
	}
	return r.db.Create(scores).Error
}

// GetScoresByDate retrieves a historical leaderboard snapshot
func (r *TournamentRepository) GetScoresByDate(date string) ([]*domain.DailyScore, error) {
	var scores []*domain.DailyScore
	result := r.db.Where("date = ?", date).
		Order("rank ASC").
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

// CreatePayout inserts a payout record
func (r *TournamentRepository) CreatePayout(record *domain.PayoutRecord) error {
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	return r.db.Create(record).Error
}

// GetPendingPayouts retrieves records awaiting dispatch, oldest first
func (r *TournamentRepository) GetPendingPayouts(limit int) ([]*domain.PayoutRecord, error) {
	var records []*domain.PayoutRecord
	result := r.db.Where("status = ?", domain.PayoutStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// MarkPayoutSent stores the response and flips the record to SENT
func (r *TournamentRepository) MarkPayoutSent(payoutID int64, payload domain.JSONB) error {
	return r.db.Model(&domain.PayoutRecord{}).
		Where("id = ?", payoutID).
		Updates(map[string]interface{}{
			"status":           domain.PayoutStatusSent,
			"response_payload": payload,
			"updated_at":       time.Now(),
		}).Error
}

// MarkPayoutFailed stores the error detail and flips the record to FAILED
func (r *TournamentRepository) MarkPayoutFailed(payoutID int64, detail string) error {
	return r.db.Model(&domain.PayoutRecord{}).
		Where("id = ?", payoutID).
		Updates(map[string]interface{}{
			"status":           domain.PayoutStatusFailed,
			"response_payload": domain.JSONB{"error": detail},
			"updated_at":       time.Now(),
		}).Error
}

// RedrivePayouts resets FAILED records for a date back to PENDING
func (r *TournamentRepository) RedrivePayouts(date string) (int64, error) {
	result := r.db.Model(&domain.PayoutRecord{}).
		Where("date = ? AND status = ?", date, domain.PayoutStatusFailed).
		Updates(map[string]interface{}{
			"status":     domain.PayoutStatusPending,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// PruneBefore deletes snapshot and payout history older than the cutoff
func (r *TournamentRepository) PruneBefore(cutoff time.Time) error {
	if err := r.db.Where("created_at < ?", cutoff).Delete(&domain.DailyScore{}).Error; err != nil {
		return err
	}
	return r.db.Where("created_at < ?", cutoff).Delete(&domain.PayoutRecord{}).Error
}

// WithTransaction returns a repository bound to the given transaction
func (r *TournamentRepository) WithTransaction(tx *gorm.DB) domain.TournamentRepository {
	if tx == nil {
		return r
	}
	return &TournamentRepository{db: tx}
}
