// Package jobservice implements the authenticated HTTP client for the
// upstream job service. All operations are idempotent reads; transient
// failures get a bounded exponential-backoff retry, credential rejections do
// not.
package jobservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/internal/query"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/metrics"
	"github.com/rs/zerolog/log"
)

const target = "job service"

// Client talks to the job service. It holds no credential or tenant state;
// the bearer credential is threaded through every call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retry      models.RetryConfig
}

// New creates a job service client from process configuration. The underlying
// transport honors HTTPS_PROXY and is shared by all concurrent requests.
func New(cfg *models.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.JobServiceURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
		timeout: cfg.JobServiceTimeout,
		retry:   cfg.Retry,
	}
}

// ListJobs returns one page of jobs in the service's native shape: list,
// total count and continuation token. The token is opaque and forwarded
// verbatim in both directions.
func (c *Client) ListJobs(ctx context.Context, filters query.NormalizedFilters, credential string) (*models.JobsPage, error) {
	params := url.Values{}
	params.Set("Limit", strconv.Itoa(filters.Limit))
	if filters.Status != "" {
		params.Set("JobRequestStatus", string(filters.Status))
	}
	if len(filters.JobTypes) > 0 {
		params.Set("Type", filters.JobTypeParam())
	}
	if filters.Queue != "" {
		params.Set("Queue", filters.Queue)
	}
	if filters.Owner != "" {
		params.Set("RequestedBy", filters.Owner)
	}
	if filters.JobRequestID != "" {
		params.Set("JobRequestID", filters.JobRequestID)
	}
	if filters.ParentInstanceID != "" {
		params.Set("ParentInstanceID", filters.ParentInstanceID)
	}
	if filters.WorkloadJobROIID != "" {
		params.Set("WorkloadJobROIID", filters.WorkloadJobROIID)
	}
	if filters.ContinuationToken != "" {
		params.Set("ContinuationToken", filters.ContinuationToken)
	}

	var payload upstreamJobsResponse
	if err := c.getJSON(ctx, "/v1/jobs", params, credential, "", "", &payload); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(payload.Jobs))
	for _, upstream := range payload.Jobs {
		jobs = append(jobs, upstream.toJob())
	}
	count := payload.Count
	if count == 0 {
		count = len(jobs)
	}
	log.Ctx(ctx).Debug().Int("jobs", len(jobs)).Bool("hasMore", payload.ContinuationToken != "").Msg("Retrieved job page")
	return &models.JobsPage{
		Jobs:              jobs,
		Count:             count,
		ContinuationToken: payload.ContinuationToken,
	}, nil
}

// GetJob returns the full job record, including the tenant id that routes
// file operations.
func (c *Client) GetJob(ctx context.Context, jobID, credential string) (*models.JobDetail, error) {
	var payload upstreamJob
	if err := c.getJSON(ctx, "/v1/jobs/job/"+url.PathEscape(jobID), nil, credential, "job", jobID, &payload); err != nil {
		return nil, err
	}
	detail := payload.toJobDetail()
	if detail.ID == "" {
		detail.ID = jobID
	}
	return &detail, nil
}

// getJSON performs an authenticated GET with the bounded retry policy and
// decodes the response into out. notFoundKind/notFoundName shape the 404
// error for resource endpoints; with an empty kind a 404 is treated as an
// unexpected upstream error.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, credential, notFoundKind, notFoundName string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	attempts := c.retry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	interval := c.retry.Interval

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return c.ctxError(ctx)
			case <-time.After(interval):
			}
			interval = time.Duration(float64(interval) * c.retry.BackoffMultiplier)
			log.Ctx(ctx).Debug().Str("path", path).Int("attempt", attempt+1).Msg("Retrying job service call")
		}

		body, statusCode, err := c.do(ctx, path, params, credential)
		if err != nil {
			if ctx.Err() != nil {
				return c.ctxError(ctx)
			}
			lastErr = apierrors.NewUpstreamUnavailable(target, err)
			continue
		}

		switch {
		case statusCode >= 200 && statusCode < 300:
			if err := json.Unmarshal(body, out); err != nil {
				return apierrors.NewUpstreamError(target, statusCode, fmt.Sprintf("invalid response format: %v", err))
			}
			return nil
		case statusCode == http.StatusUnauthorized:
			return apierrors.NewUnauthorized(upstreamMessage(body, "credential rejected by job service"))
		case statusCode == http.StatusForbidden:
			return apierrors.NewForbidden(upstreamMessage(body, "access denied by job service"))
		case statusCode == http.StatusNotFound && notFoundKind != "":
			return apierrors.NewNotFound(notFoundKind, notFoundName)
		case statusCode == http.StatusTooManyRequests:
			return apierrors.NewRateLimited(target)
		case statusCode >= 500:
			lastErr = apierrors.NewUpstreamUnavailable(target, fmt.Errorf("status %d", statusCode))
			continue
		default:
			return apierrors.NewUpstreamError(target, statusCode, upstreamMessage(body, ""))
		}
	}
	return lastErr
}

func (c *Client) do(ctx context.Context, path string, params url.Values, credential string) ([]byte, int, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL = requestURL + "?" + params.Encode()
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Authorization", "Bearer "+credential)

	started := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		metrics.ObserveUpstreamRequest(target, 0, time.Since(started))
		return nil, 0, err
	}
	defer func() { _ = response.Body.Close() }()
	metrics.ObserveUpstreamRequest(target, response.StatusCode, time.Since(started))

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, response.StatusCode, nil
}

func (c *Client) ctxError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apierrors.NewUpstreamTimeout(target)
	}
	return apierrors.NewUpstreamUnavailable(target, ctx.Err())
}

// upstreamMessage extracts a short diagnostic from an upstream error body.
func upstreamMessage(body []byte, fallback string) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return fallback
	}
	const maxLen = 200
	if len(trimmed) > maxLen {
		trimmed = trimmed[:maxLen]
	}
	return trimmed
}
