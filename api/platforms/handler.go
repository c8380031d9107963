package platforms

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/jobservice"
)

type Handler interface {
	// GetPlatforms returns the raw platform listing from the job service.
	GetPlatforms(ctx context.Context, params url.Values, credential string) (json.RawMessage, error)
	// GetPlatform returns a single platform.
	GetPlatform(ctx context.Context, platformID, credential string) (*models.Platform, error)
}

type handler struct {
	jobs *jobservice.Client
}

func New(jobs *jobservice.Client) Handler {
	return &handler{jobs: jobs}
}

func (h *handler) GetPlatforms(ctx context.Context, params url.Values, credential string) (json.RawMessage, error) {
	return h.jobs.ListPlatforms(ctx, params, credential)
}

func (h *handler) GetPlatform(ctx context.Context, platformID, credential string) (*models.Platform, error) {
	return h.jobs.GetPlatform(ctx, platformID, credential)
}
