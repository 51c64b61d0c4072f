package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

// PlayHandler handles HTTP requests for wagers
type PlayHandler struct {
	playUseCase domain.PlayUseCase
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(playUseCase domain.PlayUseCase) *PlayHandler {
	return &PlayHandler{
		playUseCase: playUseCase,
	}
}

// PlayRequest represents one wager request body. CurrentScore is the client's
// running score; values at or below zero start a fresh run at 1.0.
type PlayRequest struct {
	Probability  float64 `json:"probability" binding:"required" example:"0.5"`
	CurrentScore float64 `json:"current_score" example:"1.0"`
}

// Play handles one wager
// @Summary Play one wager
// @Description Debit one coin, roll against the chosen probability and update the best score
// @Tags play
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlayRequest true "Wager"
// @Success 200 {object} domain.PlayResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /play [post]
func (h *PlayHandler) Play(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	result, err := h.playUseCase.Play(accountID, req.Probability, req.CurrentScore)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHistory handles getting the caller's recent wagers
// @Summary Get play history
// @Description Recent wagers of the authenticated account, newest first
// @Tags play
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} domain.Play
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me/plays [get]
func (h *PlayHandler) GetHistory(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	plays, err := h.playUseCase.GetHistory(accountID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plays)
}
