package fileservice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientForServer(serverURL string) *Client {
	return New(&models.Config{
		FileServiceHostTemplate: serverURL,
		FileServiceTimeout:      5 * time.Second,
		Retry: models.RetryConfig{
			Attempts:          3,
			Interval:          time.Millisecond,
			BackoffMultiplier: 2,
		},
	})
}

func Test_ListFiles(t *testing.T) {
	t.Run("reads artifact output for simulator jobs", func(t *testing.T) {
		var seenPath, seenAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenPath = r.URL.Path
			seenAuth = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"files":["trace.json","summary.csv"]}`)
		}))
		defer server.Close()

		names, err := clientForServer(server.URL).ListFiles(context.Background(), "acme", "j1", models.JobTypeISIM, "token123")
		require.NoError(t, err)
		assert.Equal(t, "/fs/files/j1/isim/artifacts/out", seenPath)
		assert.Equal(t, "Bearer token123", seenAuth)
		assert.Equal(t, []string{"trace.json", "summary.csv"}, names)
	})

	t.Run("reads log children for workload jobs", func(t *testing.T) {
		var seenPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenPath = r.URL.Path
			fmt.Fprint(w, `{"children":[{"name":"stdout.log"},{"name":"stderr.log"}]}`)
		}))
		defer server.Close()

		names, err := clientForServer(server.URL).ListFiles(context.Background(), "acme", "j1", models.JobTypeWorkloadJob, "token")
		require.NoError(t, err)
		assert.Equal(t, "/fs/files/j1/logs", seenPath)
		assert.Equal(t, []string{"stdout.log", "stderr.log"}, names)
	})

	t.Run("artifact directory follows the job type", func(t *testing.T) {
		expected := map[models.JobType]string{
			models.JobTypeISIM:     "/fs/files/j1/isim/artifacts/out",
			models.JobTypeCoho:     "/fs/files/j1/coho/artifacts/out",
			models.JobTypeNovaCoho: "/fs/files/j1/coho/artifacts/out",
			models.JobTypeIWPS:     "/fs/files/j1/iwps/artifacts/out",
			models.JobTypeCustom:   "/fs/files/j1/iwps/artifacts/out",
		}
		for jobType, path := range expected {
			assert.Equal(t, path, filesPath("j1", jobType), "job type %s", jobType)
		}
	})

	t.Run("mixed entry shapes are accepted in order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"files":["a.txt",{"name":"b.txt"},"c.txt"]}`)
		}))
		defer server.Close()

		names, err := clientForServer(server.URL).ListFiles(context.Background(), "acme", "j1", models.JobTypeIWPS, "token")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names)
	})

	t.Run("missing listing key yields an empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()

		names, err := clientForServer(server.URL).ListFiles(context.Background(), "acme", "j1", models.JobTypeIWPS, "token")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("invalid tenant fails before any request", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		_, err := clientForServer(server.URL).ListFiles(context.Background(), "bad tenant", "j1", models.JobTypeIWPS, "token")
		assert.Equal(t, apierrors.StatusReasonInvalidTenant, apierrors.ReasonForError(err))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("gateway 404 maps to NotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer server.Close()

		_, err := clientForServer(server.URL).ListFiles(context.Background(), "acme", "j1", models.JobTypeIWPS, "token")
		assert.True(t, apierrors.IsNotFound(err))
	})

	t.Run("retries 5xx then surfaces UpstreamUnavailable", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "boom", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := clientForServer(server.URL).ListFiles(context.Background(), "acme", "j1", models.JobTypeIWPS, "token")
		assert.Equal(t, apierrors.StatusReasonUpstreamUnavailable, apierrors.ReasonForError(err))
		assert.Equal(t, int32(3), calls.Load())
	})
}

func Test_DownloadFile(t *testing.T) {
	t.Run("streams content with the gateway's headers", func(t *testing.T) {
		content := strings.Repeat("simulation output ", 1000)
		var seenPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenPath = r.URL.Path
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Length", fmt.Sprint(len(content)))
			_, _ = io.Copy(w, strings.NewReader(content))
		}))
		defer server.Close()

		download, err := clientForServer(server.URL).DownloadFile(context.Background(), "acme", "j1", "summary.csv", models.JobTypeISIM, "token")
		require.NoError(t, err)
		defer download.Body.Close()

		assert.Equal(t, "/fs/files/j1/isim/artifacts/out/summary.csv", seenPath)
		assert.Equal(t, "text/csv", download.ContentType)
		assert.Equal(t, int64(len(content)), download.ContentLength)

		data, err := io.ReadAll(download.Body)
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("missing file maps to NotFound naming the file", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer server.Close()

		_, err := clientForServer(server.URL).DownloadFile(context.Background(), "acme", "j1", "nope.txt", models.JobTypeIWPS, "token")
		require.Error(t, err)
		assert.True(t, apierrors.IsNotFound(err))
		assert.Contains(t, err.Error(), "nope.txt")
	})

	t.Run("denied credential maps to Forbidden without retry", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "not yours", http.StatusForbidden)
		}))
		defer server.Close()

		_, err := clientForServer(server.URL).DownloadFile(context.Background(), "acme", "j1", "secret.txt", models.JobTypeIWPS, "token")
		assert.Equal(t, apierrors.StatusReasonForbidden, apierrors.ReasonForError(err))
		assert.Equal(t, int32(1), calls.Load())
	})
}
