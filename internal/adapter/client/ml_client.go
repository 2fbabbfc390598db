package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClassifyRequest represents a zero-shot classification request to the
// model inference service
type ClassifyRequest struct {
	Text      string   `json:"text"`
	Labels    []string `json:"labels"`
	RequestID string   `json:"request_id,omitempty"`
}

// ClassifyResponse represents the response from the model inference service.
// Labels come back ordered by descending score, the way the underlying
// zero-shot pipeline emits them; Scores is index-aligned with Labels.
type ClassifyResponse struct {
	Labels       []string  `json:"labels"`
	Scores       []float64 `json:"scores"`
	ModelVersion string    `json:"model_version,omitempty"`
	RequestID    string    `json:"request_id,omitempty"`
}

// HealthResponse represents the model service health check response
type HealthResponse struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version"`
}

// MLClient is an HTTP client for the model inference service
type MLClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMLClient creates a new model inference service client
func NewMLClient(baseURL string, timeout time.Duration) *MLClient {
	return &MLClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Classify sends one text and its candidate labels for classification
func (c *MLClient) Classify(ctx context.Context, text string, labels []string, requestID string) (*ClassifyResponse, error) {
	reqBody := ClassifyRequest{
		Text:      text,
		Labels:    labels,
		RequestID: requestID,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("model service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Labels) != len(result.Scores) {
		return nil, fmt.Errorf("model service returned %d labels but %d scores", len(result.Labels), len(result.Scores))
	}

	return &result, nil
}

// Health checks the model service health
func (c *MLClient) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Ready checks if the model service has finished loading its weights
func (c *MLClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ready", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service not ready: status %d", resp.StatusCode)
	}

	return nil
}
