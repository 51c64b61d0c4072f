package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

// AdminHandler handles operational trigger endpoints
type AdminHandler struct {
	tournamentUseCase domain.TournamentUseCase
	payoutProcessor   domain.PayoutProcessor
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	tournamentUseCase domain.TournamentUseCase,
	payoutProcessor domain.PayoutProcessor,
) *AdminHandler {
	return &AdminHandler{
		tournamentUseCase: tournamentUseCase,
		payoutProcessor:   payoutProcessor,
	}
}

// CloseTournament handles closing the current daily window
// @Summary Close the daily window
// @Description Freeze the leaderboard, compute the prize pool, queue the payout and reset live scores
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} domain.CloseResult
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /admin/tournament/close [post]
func (h *AdminHandler) CloseTournament(c *gin.Context) {
	result, err := h.tournamentUseCase.CloseWindow(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DrainPayouts handles a manual drain of pending payouts
// @Summary Drain pending payouts
// @Description Drive all pending payouts to the external points service once
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} domain.DrainResult
// @Failure 401 {object} domain.ErrorResponse
// @Router /admin/payouts/drain [post]
func (h *AdminHandler) DrainPayouts(c *gin.Context) {
	result, err := h.payoutProcessor.Drain()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RedriveResponse represents the redrive response body
type RedriveResponse struct {
	Date  string `json:"date" example:"2026-08-30"`
	Reset int64  `json:"reset" example:"1"`
}

// RedrivePayouts handles resetting failed payouts back to pending
// @Summary Redrive failed payouts
// @Description Flip failed payouts for a date back to pending so the next drain retries them
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param date path string true "Window date" example(2026-08-30)
// @Success 200 {object} RedriveResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /admin/payouts/redrive/{date} [post]
func (h *AdminHandler) RedrivePayouts(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Date must be YYYY-MM-DD", http.StatusBadRequest, err))
		return
	}

	reset, err := h.payoutProcessor.Redrive(date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RedriveResponse{Date: date, Reset: reset})
}
