package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// JSONB is a type for handle JSONB field that GORM can automatically marshal/unmarshal JSONB fields.
type JSONB map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

// Value implements the driver.Valuer interface
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Run payout statuses
const (
	RunPayoutStatusPending = "PENDING"
	RunPayoutStatusSkipped = "SKIPPED"
)

// Payout record statuses
const (
	PayoutStatusPending = "PENDING"
	PayoutStatusSent    = "SENT"
	PayoutStatusFailed  = "FAILED"
)

// DailyRun is the settlement record of one closed window, created exactly
// once per date by the close operation and immutable afterwards.
type DailyRun struct {
	ID               int64     `json:"run_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Date             string    `json:"date" gorm:"uniqueIndex;type:varchar(10);not null"`
	Participants     int64     `json:"participants" gorm:"not null"`
	PrizePool        int64     `json:"prize_pool" gorm:"not null"`
	WinnerAccountID  *int64    `json:"winner_account_id,omitempty" gorm:"type:bigint"`
	WinnerBestScore  *float64  `json:"winner_best_score,omitempty" gorm:"type:double precision"`
	PayoutStatus     string    `json:"payout_status" gorm:"type:varchar(16);not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for DailyRun
func (d DailyRun) TableName() string {
	return "daily_runs"
}

// DailyScore is one row of the frozen per-window leaderboard, written at
// close time so history survives the live best-score reset.
type DailyScore struct {
	ID        int64     `json:"-" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Date      string    `json:"date" gorm:"index;type:varchar(10);not null"`
	AccountID int64     `json:"account_id" gorm:"not null;type:bigint"`
	BestScore float64   `json:"best_score" gorm:"type:double precision;not null"`
	Rank      int       `json:"rank" gorm:"not null"`
	CreatedAt time.Time `json:"-" gorm:"not null"`
}

// TableName specifies the table name for DailyScore
func (d DailyScore) TableName() string {
	return "daily_scores"
}

// PayoutRecord tracks one prize disbursement. The idempotency key is minted
// once at creation and reused on every drive attempt, so a retried drain
// after a timeout cannot double-pay.
type PayoutRecord struct {
	ID              int64     `json:"payout_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Date            string    `json:"date" gorm:"index;type:varchar(10);not null"`
	AccountID       int64     `json:"account_id" gorm:"not null;type:bigint"`
	Points          int64     `json:"points" gorm:"not null"`
	Status          string    `json:"status" gorm:"type:varchar(16);not null;default:'PENDING'"`
	IdempotencyKey  string    `json:"-" gorm:"uniqueIndex;type:varchar(64);not null"`
	ResponsePayload JSONB     `json:"response_payload,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for PayoutRecord
func (p PayoutRecord) TableName() string {
	return "payout_records"
}

// TournamentRepository defines the interface for settlement persistence
type TournamentRepository interface {
	CreateRun(run *DailyRun) error
	GetRunByDate(date string) (*DailyRun, error)

	CreateScores(scores []*DailyScore) error
	GetScoresByDate(date string) ([]*DailyScore, error)

	CreatePayout(record *PayoutRecord) error
	GetPendingPayouts(limit int) ([]*PayoutRecord, error)
	MarkPayoutSent(payoutID int64, payload JSONB) error
	MarkPayoutFailed(payoutID int64, detail string) error

	// RedrivePayouts flips FAILED records for a date back to PENDING so the
	// next drain picks them up again. Returns how many were reset.
	RedrivePayouts(date string) (int64, error)

	// PruneBefore deletes daily scores and payout records older than the
	// cutoff. Daily runs are kept.
	PruneBefore(cutoff time.Time) error

	WithTransaction(tx *gorm.DB) TournamentRepository
}

// CloseResult summarizes one executed window close
type CloseResult struct {
	Date         string   `json:"date"`
	Participants int64    `json:"participants"`
	PrizePool    int64    `json:"prize_pool"`
	WinnerID     *int64   `json:"winner_account_id,omitempty"`
	WinnerScore  *float64 `json:"winner_best_score,omitempty"`
	Snapshotted  int      `json:"snapshotted"`
	ToppedUp     int64    `json:"topped_up"`
}

// TournamentUseCase defines the interface for window settlement
type TournamentUseCase interface {
	// CloseWindow settles the window containing now. A second call for the
	// same date fails with AlreadyClosed and performs no writes.
	CloseWindow(now time.Time) (*CloseResult, error)

	// WindowBounds returns [start, end) of the window containing now.
	WindowBounds(now time.Time) (time.Time, time.Time)

	GetDailyScores(date string) ([]*DailyScore, error)
}

// PayoutProcessor drains pending prize payouts against the external points
// capability. Records are processed independently; one failure never blocks
// the rest.
type PayoutProcessor interface {
	Drain() (*DrainResult, error)
	Redrive(date string) (int64, error)
	StartBackgroundProcessing()
	StopBackgroundProcessing()
}

// DrainResult summarizes one drain pass
type DrainResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}
