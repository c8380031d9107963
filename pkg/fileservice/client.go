package fileservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/metrics"
)

const target = "file service"

// Client retrieves artifact listings and file content from per-tenant file
// gateways. The gateway host is resolved per job from the tenant on the job
// record, never from caller input.
type Client struct {
	resolver   *Resolver
	httpClient *http.Client
	timeout    time.Duration
	retry      models.RetryConfig
}

func New(config *models.Config) *Client {
	return &Client{
		resolver: NewResolver(config),
		httpClient: &http.Client{
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
		timeout: config.FileServiceTimeout,
		retry:   config.Retry,
	}
}

// Download is an open stream of file content. The caller owns Body and must
// close it.
type Download struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// artifactDir returns the gateway directory segment holding a job type's
// output artifacts.
func artifactDir(jobType models.JobType) string {
	switch jobType {
	case models.JobTypeISIM:
		return "isim"
	case models.JobTypeCoho, models.JobTypeNovaCoho:
		return "coho"
	default:
		return "iwps"
	}
}

// filesPath returns the gateway path listing a job's files. Workload jobs
// expose log directories instead of simulator artifact output.
func filesPath(jobID string, jobType models.JobType) string {
	escaped := url.PathEscape(jobID)
	if jobType == models.JobTypeWorkloadJob || jobType == models.JobTypeWorkloadJobROI {
		return fmt.Sprintf("/fs/files/%s/logs", escaped)
	}
	return fmt.Sprintf("/fs/files/%s/%s/artifacts/out", escaped, artifactDir(jobType))
}

// entriesKey returns the JSON key under which the gateway lists directory
// entries for the given job type.
func entriesKey(jobType models.JobType) string {
	if jobType == models.JobTypeWorkloadJob || jobType == models.JobTypeWorkloadJobROI {
		return "children"
	}
	return "files"
}

// fileEntry accepts both listing shapes the gateways emit, a bare filename
// string or an object carrying a name field.
type fileEntry struct {
	Name string
}

func (f *fileEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		f.Name = name
		return nil
	}
	var object struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}
	f.Name = object.Name
	return nil
}

// ListFiles returns the names of a job's files in the order the gateway
// reports them.
func (c *Client) ListFiles(ctx context.Context, tenantID, jobID string, jobType models.JobType, credential string) ([]string, error) {
	host, err := c.resolver.ResolveHost(tenantID)
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, host+filesPath(jobID, jobType), credential, jobID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var listing map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, apierrors.NewUpstreamError(target, resp.StatusCode, fmt.Sprintf("malformed listing: %v", err))
	}
	raw, ok := listing[entriesKey(jobType)]
	if !ok {
		return []string{}, nil
	}
	var entries []fileEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, apierrors.NewUpstreamError(target, resp.StatusCode, fmt.Sprintf("malformed listing: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name != "" {
			names = append(names, entry.Name)
		}
	}
	return names, nil
}

// DownloadFile opens a stream of the named file's content. Failures are
// retried only until the response headers arrive. Once the body is handed to
// the caller the transfer is theirs.
func (c *Client) DownloadFile(ctx context.Context, tenantID, jobID, filename string, jobType models.JobType, credential string) (*Download, error) {
	host, err := c.resolver.ResolveHost(tenantID)
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, host+filesPath(jobID, jobType)+"/"+url.PathEscape(filename), credential, filename)
	if err != nil {
		return nil, err
	}
	return &Download{
		Body:          resp.Body,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

// get performs a GET against a tenant gateway with retry on transport errors
// and 5xx responses. A non-nil response is always a 2xx whose body the caller
// must close.
func (c *Client) get(ctx context.Context, rawURL, credential, notFoundName string) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

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
				cancel()
				return nil, c.ctxError(ctx)
			case <-time.After(interval):
			}
			interval = time.Duration(float64(interval) * c.retry.BackoffMultiplier)
		}

		resp, err := c.do(ctx, rawURL, credential)
		if err != nil {
			if ctx.Err() != nil {
				cancel()
				return nil, c.ctxError(ctx)
			}
			lastErr = apierrors.NewUpstreamUnavailable(target, err)
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
			return resp, nil
		case resp.StatusCode >= 500:
			lastErr = apierrors.NewUpstreamUnavailable(target, fmt.Errorf("status %d", resp.StatusCode))
			drainAndClose(resp)
			continue
		default:
			defer cancel()
			defer drainAndClose(resp)
			message := readMessage(resp.Body)
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return nil, apierrors.NewUnauthorized(message)
			case http.StatusForbidden:
				return nil, apierrors.NewForbidden(message)
			case http.StatusNotFound:
				return nil, apierrors.NewNotFound("file", notFoundName)
			case http.StatusTooManyRequests:
				return nil, apierrors.NewRateLimited(target)
			default:
				return nil, apierrors.NewUpstreamError(target, resp.StatusCode, message)
			}
		}
	}
	cancel()
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, rawURL, credential string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/octet-stream")
	req.Header.Set("Authorization", "Bearer "+credential)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	metrics.ObserveUpstreamRequest(target, statusCode, time.Since(started))
	return resp, err
}

func (c *Client) ctxError(ctx context.Context) error {
	if ctx.Err() == context.DeadlineExceeded {
		return apierrors.NewUpstreamTimeout(target)
	}
	return apierrors.NewUpstreamUnavailable(target, ctx.Err())
}

func readMessage(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 200))
	return string(data)
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}

// cancelReadCloser ties the request's timeout cancel to the body so a
// streaming download is not cut off when get returns.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *cancelReadCloser) Close() error {
	r.cancel()
	return r.ReadCloser.Close()
}
