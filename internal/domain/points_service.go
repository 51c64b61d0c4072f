package domain

import "fmt"

// PointsService defines the interface for the external points/payment API.
// SendPoints must be called with the same idempotency key on every attempt
// for a given payout record.
type PointsService interface {
	SendPoints(req PointsTransferRequest) (PointsTransferResponse, error)
}

// PointsTransferRequest represents a prize transfer to the points API
type PointsTransferRequest struct {
	UserKey        string `json:"userKey"`
	Points         int64  `json:"points"`
	IdempotencyKey string `json:"idempotencyKey"`
	Reason         string `json:"reason"`
}

// PointsTransferResponse represents the response from the transfer endpoint
type PointsTransferResponse struct {
	TransferID string `json:"transferId"`
	Status     string `json:"status"`
}

// PointsErrorResponse represents error responses from the points API
type PointsErrorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// PointsServiceError represents a points API error with status code
type PointsServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *PointsServiceError) Error() string {
	return fmt.Sprintf("%s", e.Message)
}

// Is4xxError checks if the error is a 4xx client error
func (e *PointsServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
