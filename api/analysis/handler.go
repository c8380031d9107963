package analysis

import (
	"context"
	"strings"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/llm"
)

const maxPromptLength = 10000

// QueryRequest is the body of an analysis query.
type QueryRequest struct {
	Prompt string `json:"prompt"`
}

type Handler interface {
	// Query forwards an analysis prompt to the language model.
	Query(ctx context.Context, request QueryRequest) (*models.AnalysisResponse, error)
}

type handler struct {
	llm *llm.Client
}

func New(llmClient *llm.Client) Handler {
	return &handler{llm: llmClient}
}

func (h *handler) Query(ctx context.Context, request QueryRequest) (*models.AnalysisResponse, error) {
	prompt := strings.TrimSpace(request.Prompt)
	if prompt == "" {
		return nil, apierrors.NewInvalidFilterMessage("prompt must not be empty")
	}
	if len(prompt) > maxPromptLength {
		return nil, apierrors.NewInvalidFilterMessage("prompt exceeds the maximum length of 10000 characters")
	}
	return h.llm.Query(ctx, prompt)
}
