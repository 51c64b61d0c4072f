package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

// respondError writes an error response, preserving the status and code of an
// AppError and collapsing everything else to a plain 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		if requestID, exists := c.Get("request_id"); exists {
			appErr.RequestID = requestID.(string)
		}
		appErr.Path = c.Request.URL.Path
		appErr.Method = c.Request.Method
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(
		domain.NewInternalError("Internal server error", err)))
}

// accountIDFromContext extracts the authenticated account ID set by the JWT
// middleware. A missing or malformed value means the middleware did not run.
func accountIDFromContext(c *gin.Context) (int64, bool) {
	raw, exists := c.Get("account_id")
	if !exists {
		respondError(c, domain.NewUnauthorizedError("Account not authenticated"))
		return 0, false
	}
	accountID, err := strconv.ParseInt(raw.(string), 10, 64)
	if err != nil {
		respondError(c, domain.NewUnauthorizedError("Invalid account identity"))
		return 0, false
	}
	return accountID, true
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request"`
}
