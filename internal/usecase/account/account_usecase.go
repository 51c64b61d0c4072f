package account

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/auth"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxNicknameLength = 64

// AccountUseCase implements account business logic
type AccountUseCase struct {
	accountRepo domain.AccountRepository
	jwtService  auth.JWTService
	logger      *logger.Logger
}

// NewAccountUseCase creates a new account usecase
func NewAccountUseCase(
	accountRepo domain.AccountRepository,
	jwtService auth.JWTService,
	logger *logger.Logger,
) domain.AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// CreateWithNickname registers a guest account under a unique nickname and
// returns the account with a signed session token
func (uc *AccountUseCase) CreateWithNickname(nickname string) (*domain.Account, string, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || len(nickname) > maxNicknameLength {
		return nil, "", domain.NewAppError(domain.ErrCodeBadNickname, "Nickname must be 1 to 64 characters", 400, nil)
	}

	existing, err := uc.accountRepo.GetByNickname(nickname)
	if err != nil {
		return nil, "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check nickname", 500, err)
	}
	if existing != nil {
		return nil, "", domain.NewAppError(domain.ErrCodeDuplicateNickname, "Nickname already taken", 409, nil)
	}

	account := &domain.Account{
		Nickname: &nickname,
		Coins:    domain.StartingCoins,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", domain.NewAppError(domain.ErrCodeDuplicateNickname, "Nickname already taken", 409, err)
		}
		return nil, "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create account", 500, err)
	}

	token, err := uc.jwtService.GenerateToken(strconv.FormatInt(account.ID, 10), nickname)
	if err != nil {
		return nil, "", domain.NewInternalError("Failed to generate token", err)
	}

	uc.logger.Info("Account created",
		zap.Int64("account_id", account.ID),
		zap.String("nickname", nickname))

	return account, token, nil
}

// GetAccountInfo returns the account with its current leaderboard rank; the
// rank is nil until the account has a best score.
func (uc *AccountUseCase) GetAccountInfo(accountID int64) (*domain.Account, *int64, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get account", 500, err)
	}
	if account == nil {
		return nil, nil, domain.NewAppError(domain.ErrCodeAccountNotFound, "Account not found", 404, nil)
	}

	var rank *int64
	if account.BestScore != nil {
		r, err := uc.accountRepo.RankOf(*account.BestScore)
		if err != nil {
			uc.logger.Warn("Failed to compute rank", zap.Error(err), zap.Int64("account_id", accountID))
		} else {
			rank = &r
		}
	}

	return account, rank, nil
}

// GetLeaderboard returns the live top of the current window, ranked by
// rarest best score first
func (uc *AccountUseCase) GetLeaderboard(limit int) ([]*domain.Account, error) {
	accounts, err := uc.accountRepo.TopByBestScore(limit)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get leaderboard", 500, err)
	}
	return accounts, nil
}

// GetWallet returns the account's coin balance
func (uc *AccountUseCase) GetWallet(accountID int64) (int, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get account", 500, err)
	}
	if account == nil {
		return 0, domain.NewAppError(domain.ErrCodeAccountNotFound, "Account not found", 404, nil)
	}
	return account.Coins, nil
}
