package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

// RewardHandler handles HTTP requests for reward grants and referral claims
type RewardHandler struct {
	rewardUseCase domain.RewardUseCase
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardUseCase domain.RewardUseCase) *RewardHandler {
	return &RewardHandler{
		rewardUseCase: rewardUseCase,
	}
}

// AdRewardRequest represents the ad reward request body
type AdRewardRequest struct {
	IdempotencyKey string `json:"idempotency_key" binding:"required" example:"ad-9f3c2b"`
}

// AdRewardResponse represents the ad reward response body
type AdRewardResponse struct {
	Amount  int  `json:"amount" example:"20"`
	Granted bool `json:"granted" example:"true"`
}

// IssueAdReward handles a rewarded-action credit
// @Summary Issue an ad reward
// @Description Credit coins for a rewarded action, exactly once per idempotency key
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdRewardRequest true "Idempotency key"
// @Success 200 {object} AdRewardResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Router /rewards/ad [post]
func (h *RewardHandler) IssueAdReward(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req AdRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	grant, err := h.rewardUseCase.IssueAdReward(accountID, req.IdempotencyKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AdRewardResponse{
		Amount:  grant.Amount,
		Granted: true,
	})
}

// ReferralClaimRequest represents the referral claim request body
type ReferralClaimRequest struct {
	ReferrerID int64 `json:"referrer_id" example:"42"`
}

// ClaimReferral handles a referral claim
// @Summary Claim a referral
// @Description Credit the referrer and the claimant, at most once per claimant
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReferralClaimRequest true "Referrer"
// @Success 200 {object} domain.ReferralClaim
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /referrals/claim [post]
func (h *RewardHandler) ClaimReferral(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req ReferralClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}
	if req.ReferrerID == 0 {
		respondError(c, domain.NewAppError(domain.ErrCodeNoRef, "Referrer is required", http.StatusBadRequest, nil))
		return
	}

	claim, err := h.rewardUseCase.ClaimReferral(accountID, req.ReferrerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, claim)
}
