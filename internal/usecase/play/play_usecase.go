package play

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/lock"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlayUseCase executes one wager: coin debit, probability roll and best-score
// update commit as a single unit. The coin debit rule is DebitEveryAttempt:
// domain.PlayCost is taken on every attempt, win or lose.
type PlayUseCase struct {
	accountRepo domain.AccountRepository
	playRepo    domain.PlayRepository
	lockManager *lock.AccountLockManager
	db          *gorm.DB
	logger      *logger.Logger

	// rng draws a uniform value in [0,1); injectable for tests
	rng func() float64
}

// NewPlayUseCase creates a new play usecase
func NewPlayUseCase(
	accountRepo domain.AccountRepository,
	playRepo domain.PlayRepository,
	lockManager *lock.AccountLockManager,
	db *gorm.DB,
	logger *logger.Logger,
) domain.PlayUseCase {
	return &PlayUseCase{
		accountRepo: accountRepo,
		playRepo:    playRepo,
		lockManager: lockManager,
		db:          db,
		logger:      logger,
		rng:         rand.Float64,
	}
}

// Play executes one wager for the account
func (uc *PlayUseCase) Play(accountID int64, chosenProbability, previousScore float64) (*domain.PlayResult, error) {
	if chosenProbability <= 0 || chosenProbability >= 1 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidProbability, "Chosen probability must be in (0, 1) exclusive", 400, nil)
	}
	if previousScore <= 0 {
		previousScore = 1.0
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.lockManager.Lock(ctx, accountID); err != nil {
		return nil, domain.NewInternalError("Failed to serialize play for account", err)
	}
	defer uc.lockManager.Unlock(accountID)

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	result, err := uc.playInTx(
		uc.accountRepo.WithTransaction(tx),
		uc.playRepo.WithTransaction(tx),
		accountID,
		chosenProbability,
		previousScore,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.attachRank(result)

	uc.logger.Info("Play committed",
		zap.Int64("account_id", accountID),
		zap.Float64("chosen_probability", chosenProbability),
		zap.String("outcome", string(result.Outcome)),
		zap.Float64("new_score", result.NewScore))

	return result, nil
}

// playInTx runs the atomic part of one wager against transaction-bound
// repositories: balance check, draw, debit, best-score update, play record.
func (uc *PlayUseCase) playInTx(
	accountRepo domain.AccountRepository,
	playRepo domain.PlayRepository,
	accountID int64,
	chosenProbability, previousScore float64,
) (*domain.PlayResult, error) {
	account, err := accountRepo.GetByIDForUpdate(accountID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get account", 500, err)
	}
	if account == nil {
		return nil, domain.NewAppError(domain.ErrCodeAccountNotFound, "Account not found", 404, nil)
	}

	if account.Coins <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeNoCoins, "Not enough coins to play", 400, nil)
	}

	outcome, newScore := uc.draw(chosenProbability, previousScore)

	if err := accountRepo.DebitCoins(accountID, domain.PlayCost); err != nil {
		return nil, err
	}

	bestScore := account.BestScore
	if outcome == domain.PlayOutcomeSuccess && (bestScore == nil || newScore < *bestScore) {
		if err := accountRepo.UpdateBestScore(accountID, newScore); err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update best score", 500, err)
		}
		bestScore = &newScore
	}

	play := &domain.Play{
		AccountID:         accountID,
		ResultingScore:    newScore,
		ChosenProbability: chosenProbability,
		Outcome:           outcome,
	}
	if err := playRepo.Create(play); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to record play", 500, err)
	}

	return &domain.PlayResult{
		Outcome:   outcome,
		NewScore:  newScore,
		BestScore: bestScore,
		Coins:     account.Coins - domain.PlayCost,
	}, nil
}

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// GetHistory returns the account's recent wagers, newest first.
func (uc *PlayUseCase) GetHistory(accountID int64, limit, offset int) ([]*domain.Play, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	plays, err := uc.playRepo.GetByAccountID(accountID, limit, offset)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get play history", 500, err)
	}
	return plays, nil
}

// draw rolls the wager: success multiplies the running score down, failure
// resets it to 1.0.
func (uc *PlayUseCase) draw(chosenProbability, previousScore float64) (domain.PlayOutcome, float64) {
	if uc.rng() < chosenProbability {
		return domain.PlayOutcomeSuccess, previousScore * chosenProbability
	}
	return domain.PlayOutcomeFail, 1.0
}

// attachRank fills in the account's leaderboard position; no best score means
// no rank. Rank is a read-path derivation, so a failure here only logs.
func (uc *PlayUseCase) attachRank(result *domain.PlayResult) {
	if result.BestScore == nil {
		return
	}
	rank, err := uc.accountRepo.RankOf(*result.BestScore)
	if err != nil {
		uc.logger.Warn("Failed to compute rank after play", zap.Error(err))
		return
	}
	result.Rank = &rank
}
