package analysis

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Query_Validation(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"content":[{"type":"text","text":"answer"}]}`)
	}))
	defer server.Close()

	handler := New(llm.New(&models.Config{
		LLM: models.LLMConfig{URL: server.URL, APIKey: "key", Model: "m", Timeout: 5 * time.Second},
	}))

	t.Run("relays a valid prompt", func(t *testing.T) {
		answer, err := handler.Query(context.Background(), QueryRequest{Prompt: "  why did j1 fail?  "})
		require.NoError(t, err)
		assert.Equal(t, "answer", answer.Answer)
	})

	t.Run("empty or whitespace prompts fail before the model is called", func(t *testing.T) {
		before := calls.Load()
		for _, prompt := range []string{"", "   ", "\n\t"} {
			_, err := handler.Query(context.Background(), QueryRequest{Prompt: prompt})
			assert.Equal(t, apierrors.StatusReasonInvalidFilter, apierrors.ReasonForError(err))
		}
		assert.Equal(t, before, calls.Load())
	})

	t.Run("oversized prompts are rejected", func(t *testing.T) {
		_, err := handler.Query(context.Background(), QueryRequest{Prompt: strings.Repeat("a", 10001)})
		assert.Equal(t, apierrors.StatusReasonInvalidFilter, apierrors.ReasonForError(err))
	})
}
