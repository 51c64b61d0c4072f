package domain

import (
	"time"

	"gorm.io/gorm"
)

// PlayOutcome represents the result of a single wager
type PlayOutcome string

const (
	PlayOutcomeSuccess PlayOutcome = "success"
	PlayOutcomeFail    PlayOutcome = "fail"
)

// Play is an append-only record of one wager attempt. Rows are never updated;
// the daily close aggregates them per window.
type Play struct {
	ID                int64       `json:"play_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	AccountID         int64       `json:"account_id" gorm:"index;not null;type:bigint"`
	ResultingScore    float64     `json:"resulting_score" gorm:"type:double precision;not null"`
	ChosenProbability float64     `json:"chosen_probability" gorm:"type:double precision;not null"`
	Outcome           PlayOutcome `json:"outcome" gorm:"type:varchar(8);not null"`
	CreatedAt         time.Time   `json:"created_at" gorm:"not null;index"`

	Account Account `json:"-" gorm:"foreignKey:AccountID"`
}

// TableName specifies the table name for Play
func (p Play) TableName() string {
	return "plays"
}

// WindowScore is one participant's best (minimum) successful score within a
// tournament window, as aggregated from plays.
type WindowScore struct {
	AccountID int64
	BestScore float64
}

// PlayRepository defines the interface for play records
type PlayRepository interface {
	Create(play *Play) error
	GetByAccountID(accountID int64, limit, offset int) ([]*Play, error)

	// CountParticipants counts distinct accounts with at least one play in
	// [from, to).
	CountParticipants(from, to time.Time) (int64, error)

	// BestScoresInWindow aggregates each participant's minimum successful
	// score in [from, to), ascending, limited.
	BestScoresInWindow(from, to time.Time, limit int) ([]WindowScore, error)

	WithTransaction(tx *gorm.DB) PlayRepository
}

// PlayResult is what one wager returns to the client
type PlayResult struct {
	Outcome   PlayOutcome `json:"result"`
	NewScore  float64     `json:"current_score"`
	BestScore *float64    `json:"best_score"`
	Rank      *int64      `json:"rank"`
	Coins     int         `json:"coins"`
}

// PlayUseCase defines the interface for the play engine
type PlayUseCase interface {
	Play(accountID int64, chosenProbability, previousScore float64) (*PlayResult, error)
	GetHistory(accountID int64, limit, offset int) ([]*Play, error)
}
