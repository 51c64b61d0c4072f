package tournament

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/config"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TournamentUseCase settles one daily window: freeze the leaderboard, compute
// the prize pool, queue the payout, reset live scores and top balances back up
// to the daily floor. All of it commits in one transaction keyed on the run's
// unique date.
type TournamentUseCase struct {
	accountRepo    domain.AccountRepository
	playRepo       domain.PlayRepository
	tournamentRepo domain.TournamentRepository
	db             *gorm.DB
	logger         *logger.Logger
	cfg            config.TournamentConfig
	location       *time.Location
}

// NewTournamentUseCase creates a new tournament usecase
func NewTournamentUseCase(
	accountRepo domain.AccountRepository,
	playRepo domain.PlayRepository,
	tournamentRepo domain.TournamentRepository,
	db *gorm.DB,
	logger *logger.Logger,
	cfg config.TournamentConfig,
) (domain.TournamentUseCase, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, domain.NewInternalError("Invalid tournament timezone", err)
	}
	return &TournamentUseCase{
		accountRepo:    accountRepo,
		playRepo:       playRepo,
		tournamentRepo: tournamentRepo,
		db:             db,
		logger:         logger,
		cfg:            cfg,
		location:       location,
	}, nil
}

// WindowBounds returns [start, end) of the window containing now. Windows run
// anchor-to-anchor in the configured timezone.
func (uc *TournamentUseCase) WindowBounds(now time.Time) (time.Time, time.Time) {
	local := now.In(uc.location)
	anchor := time.Date(local.Year(), local.Month(), local.Day(),
		uc.cfg.AnchorHour, uc.cfg.AnchorMinute, 0, 0, uc.location)
	if local.Before(anchor) {
		anchor = anchor.AddDate(0, 0, -1)
	}
	return anchor, anchor.AddDate(0, 0, 1)
}

// CloseWindow settles the window containing now
func (uc *TournamentUseCase) CloseWindow(now time.Time) (*domain.CloseResult, error) {
	start, end := uc.WindowBounds(now)
	date := start.Format("2006-01-02")

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	result, err := uc.closeInTx(
		uc.accountRepo.WithTransaction(tx),
		uc.playRepo.WithTransaction(tx),
		uc.tournamentRepo.WithTransaction(tx),
		date,
		start,
		end,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Daily window closed",
		zap.String("date", date),
		zap.Int64("participants", result.Participants),
		zap.Int64("prize_pool", result.PrizePool),
		zap.Int("snapshotted", result.Snapshotted),
		zap.Int64("topped_up", result.ToppedUp))

	return result, nil
}

// closeInTx runs the full settlement against transaction-bound repositories.
// The run row's unique date makes the whole close idempotent: a concurrent
// second close fails on the insert and rolls everything back.
func (uc *TournamentUseCase) closeInTx(
	accountRepo domain.AccountRepository,
	playRepo domain.PlayRepository,
	tournamentRepo domain.TournamentRepository,
	date string,
	start, end time.Time,
) (*domain.CloseResult, error) {
	existing, err := tournamentRepo.GetRunByDate(date)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check existing run", 500, err)
	}
	if existing != nil {
		return nil, domain.NewAppError(domain.ErrCodeAlreadyClosed, "Window already closed for this date", 409, nil)
	}

	participants, err := playRepo.CountParticipants(start, end)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to count participants", 500, err)
	}

	top, err := playRepo.BestScoresInWindow(start, end, uc.cfg.LeaderboardTop)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to read window scores", 500, err)
	}

	prizePool := int64(0)
	if participants >= uc.cfg.PrizeThreshold {
		prizePool = participants
		if prizePool > uc.cfg.MaxPrizePool {
			prizePool = uc.cfg.MaxPrizePool
		}
	}

	run := &domain.DailyRun{
		Date:         date,
		Participants: participants,
		PrizePool:    prizePool,
		PayoutStatus: domain.RunPayoutStatusSkipped,
	}
	if prizePool > 0 && len(top) > 0 {
		run.WinnerAccountID = &top[0].AccountID
		run.WinnerBestScore = &top[0].BestScore
		run.PayoutStatus = domain.RunPayoutStatusPending
	}
	if err := tournamentRepo.CreateRun(run); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewAppError(domain.ErrCodeAlreadyClosed, "Window already closed for this date", 409, err)
		}
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create daily run", 500, err)
	}

	scores := rankScores(date, top)
	if len(scores) > 0 {
		if err := tournamentRepo.CreateScores(scores); err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to snapshot scores", 500, err)
		}
	}

	if run.PayoutStatus == domain.RunPayoutStatusPending {
		key, err := generateIdempotencyKey()
		if err != nil {
			return nil, domain.NewInternalError("Failed to generate payout key", err)
		}
		payout := &domain.PayoutRecord{
			Date:           date,
			AccountID:      *run.WinnerAccountID,
			Points:         prizePool,
			Status:         domain.PayoutStatusPending,
			IdempotencyKey: key,
		}
		if err := tournamentRepo.CreatePayout(payout); err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to queue payout", 500, err)
		}
	}

	if err := accountRepo.ResetAllBestScores(); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to reset best scores", 500, err)
	}

	toppedUp, err := accountRepo.TopUpCoinsBelow(uc.cfg.DailyCoinFloor)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to top up balances", 500, err)
	}

	if uc.cfg.RetentionDays > 0 {
		cutoff := start.AddDate(0, 0, -uc.cfg.RetentionDays)
		if err := tournamentRepo.PruneBefore(cutoff); err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to prune old settlement data", 500, err)
		}
	}

	return &domain.CloseResult{
		Date:         date,
		Participants: participants,
		PrizePool:    prizePool,
		WinnerID:     run.WinnerAccountID,
		WinnerScore:  run.WinnerBestScore,
		Snapshotted:  len(scores),
		ToppedUp:     toppedUp,
	}, nil
}

// GetDailyScores returns the frozen leaderboard of a closed window
func (uc *TournamentUseCase) GetDailyScores(date string) ([]*domain.DailyScore, error) {
	run, err := uc.tournamentRepo.GetRunByDate(date)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get daily run", 500, err)
	}
	if run == nil {
		return nil, domain.NewNotFoundError("No closed window for this date")
	}

	scores, err := uc.tournamentRepo.GetScoresByDate(date)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get daily scores", 500, err)
	}
	return scores, nil
}

// rankScores assigns dense ranks: equal scores share a rank, the next
// distinct score takes rank+1.
func rankScores(date string, top []domain.WindowScore) []*domain.DailyScore {
	scores := make([]*domain.DailyScore, 0, len(top))
	rank := 0
	var prev float64
	for i, ws := range top {
		if i == 0 || ws.BestScore != prev {
			rank++
			prev = ws.BestScore
		}
		scores = append(scores, &domain.DailyScore{
			Date:      date,
			AccountID: ws.AccountID,
			BestScore: ws.BestScore,
			Rank:      rank,
		})
	}
	return scores
}

func generateIdempotencyKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "payout-" + hex.EncodeToString(b), nil
}
