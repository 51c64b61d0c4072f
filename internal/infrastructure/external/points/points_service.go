package points

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

type pointsServiceImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewPointsService creates a client for the external points/payment API. The
// client retries transport-level failures a few times; a request that still
// fails (or times out) surfaces as an error, never as an assumed success.
func NewPointsService(baseURL, apiKey string, timeout time.Duration) domain.PointsService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	return &pointsServiceImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

func (p *pointsServiceImpl) SendPoints(reqData domain.PointsTransferRequest) (domain.PointsTransferResponse, error) {
	url := fmt.Sprintf("%s/api/v1/points/transfer", p.baseURL)
	var resp domain.PointsTransferResponse
	err := p.sendRequest(http.MethodPost, url, reqData, http.StatusOK, &resp)
	return resp, err
}

// method to send HTTP requests and handle responses
func (p *pointsServiceImpl) sendRequest(method, url string, bodyData any, expectedStatus int, out any) error {
	var body io.Reader

	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := retryablehttp.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		var errResp domain.PointsErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			return &domain.PointsServiceError{
				StatusCode: resp.StatusCode,
				Code:       errResp.Code,
				Message:    errResp.Msg,
			}
		}
		return &domain.PointsServiceError{
			StatusCode: resp.StatusCode,
			Code:       "UNEXPECTED_STATUS",
			Message:    fmt.Sprintf("unexpected status %d - %s", resp.StatusCode, string(respBody)),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
