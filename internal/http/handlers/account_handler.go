package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountUseCase domain.AccountUseCase
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUseCase domain.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
	}
}

// RegisterNicknameRequest represents the nickname registration request body
type RegisterNicknameRequest struct {
	Nickname string `json:"nickname" binding:"required" example:"lucky_fox"`
}

// RegisterNicknameResponse represents the nickname registration response body
type RegisterNicknameResponse struct {
	Token   string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Account AccountInfo `json:"account"`
}

// AccountInfo represents account information
type AccountInfo struct {
	ID             int64    `json:"account_id" example:"123"`
	Nickname       *string  `json:"nickname" example:"lucky_fox"`
	BestScore      *float64 `json:"best_score"`
	Rank           *int64   `json:"rank"`
	Coins          int      `json:"coins" example:"100"`
	ReferralPoints int      `json:"referral_points" example:"0"`
}

// RegisterNickname handles guest account creation
// @Summary Register a nickname
// @Description Create a guest account under a unique nickname and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterNicknameRequest true "Nickname"
// @Success 200 {object} RegisterNicknameResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /auth/nickname [post]
func (h *AccountHandler) RegisterNickname(c *gin.Context) {
	var req RegisterNicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	account, token, err := h.accountUseCase.CreateWithNickname(req.Nickname)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RegisterNicknameResponse{
		Token: token,
		Account: AccountInfo{
			ID:             account.ID,
			Nickname:       account.Nickname,
			BestScore:      account.BestScore,
			Coins:          account.Coins,
			ReferralPoints: account.ReferralPoints,
		},
	})
}

// GetAccountInfo handles getting the authenticated account's state
// @Summary Get account information
// @Description Get the current account with its live leaderboard rank
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AccountInfo
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *AccountHandler) GetAccountInfo(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	account, rank, err := h.accountUseCase.GetAccountInfo(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AccountInfo{
		ID:             account.ID,
		Nickname:       account.Nickname,
		BestScore:      account.BestScore,
		Rank:           rank,
		Coins:          account.Coins,
		ReferralPoints: account.ReferralPoints,
	})
}

// WalletResponse represents the wallet response body
type WalletResponse struct {
	Coins int `json:"coins" example:"87"`
}

// GetWallet handles getting the authenticated account's coin balance
// @Summary Get wallet
// @Description Get the current coin balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WalletResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me/wallet [get]
func (h *AccountHandler) GetWallet(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	coins, err := h.accountUseCase.GetWallet(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, WalletResponse{Coins: coins})
}
