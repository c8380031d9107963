package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/metrics"
)

const target = "language model"

// Client forwards analysis prompts to a hosted language model. The model
// credential is service configuration, not the caller's bearer token.
type Client struct {
	config     models.LLMConfig
	httpClient *http.Client
}

func New(config *models.Config) *Client {
	return &Client{
		config: config.LLM,
		httpClient: &http.Client{
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type completionResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
}

// Query sends the prompt to the configured model and returns its text answer.
func (c *Client) Query(ctx context.Context, prompt string) (*models.AnalysisResponse, error) {
	if c.config.URL == "" || c.config.APIKey == "" {
		return nil, apierrors.NewUpstreamUnavailable(target, fmt.Errorf("analysis backend is not configured"))
	}

	body, err := json.Marshal(completionRequest{
		Model:       c.config.Model,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		System:      c.config.SystemPrompt,
		Messages:    []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, apierrors.NewUnknown(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, apierrors.NewUnknown(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	metrics.ObserveUpstreamRequest(target, statusCode, time.Since(started))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apierrors.NewUpstreamTimeout(target)
		}
		return nil, apierrors.NewUpstreamUnavailable(target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, apierrors.NewRateLimited(target)
	case resp.StatusCode >= 500:
		return nil, apierrors.NewUpstreamUnavailable(target, fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, apierrors.NewUpstreamError(target, resp.StatusCode, string(data))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, apierrors.NewUpstreamError(target, resp.StatusCode, fmt.Sprintf("malformed completion: %v", err))
	}

	var parts []string
	for _, block := range completion.Content {
		if block.Type == "" || block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	model := completion.Model
	if model == "" {
		model = c.config.Model
	}
	return &models.AnalysisResponse{
		Answer: strings.Join(parts, "\n"),
		Model:  model,
	}, nil
}
