package instances

import (
	"context"
	"strconv"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/jobservice"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// ListOptions are the raw query values of an instance listing request.
type ListOptions struct {
	Page       string
	PageSize   string
	PlatformID string
	Available  string
}

type Handler interface {
	// GetInstances returns a page of simulation instances.
	GetInstances(ctx context.Context, options ListOptions, credential string) (*models.InstanceListResponse, error)
	// GetInstance returns a single instance.
	GetInstance(ctx context.Context, instanceID, credential string) (*models.Instance, error)
}

type handler struct {
	jobs *jobservice.Client
}

func New(jobs *jobservice.Client) Handler {
	return &handler{jobs: jobs}
}

func (h *handler) GetInstances(ctx context.Context, options ListOptions, credential string) (*models.InstanceListResponse, error) {
	page, pageSize, err := parsePaging(options)
	if err != nil {
		return nil, err
	}

	filters := jobservice.InstanceFilters{
		PlatformID: options.PlatformID,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}
	filtersApplied := map[string]any{}
	if options.PlatformID != "" {
		filtersApplied["platform_id"] = options.PlatformID
	}
	if options.Available != "" {
		available, err := strconv.ParseBool(options.Available)
		if err != nil {
			return nil, apierrors.NewInvalidFilter("available", options.Available, []string{"true", "false"})
		}
		filters.Available = &available
		filtersApplied["available"] = available
	}

	items, err := h.jobs.ListInstances(ctx, filters, credential)
	if err != nil {
		return nil, err
	}

	// The instance listing carries no total, so the count is approximated
	// from the window. A full page implies at least one more.
	total := filters.Offset + len(items)
	if len(items) == pageSize {
		total++
	}
	return &models.InstanceListResponse{
		Items:          items,
		Meta:           models.NewPaginationMeta(total, page, pageSize),
		FiltersApplied: filtersApplied,
		SortBy:         "instance_id",
		SortOrder:      "asc",
	}, nil
}

func (h *handler) GetInstance(ctx context.Context, instanceID, credential string) (*models.Instance, error) {
	return h.jobs.GetInstance(ctx, instanceID, credential)
}

func parsePaging(options ListOptions) (page, pageSize int, err error) {
	page = 1
	if options.Page != "" {
		page, err = strconv.Atoi(options.Page)
		if err != nil || page < 1 {
			return 0, 0, apierrors.NewInvalidFilterMessage("page must be a positive integer")
		}
	}
	pageSize = defaultPageSize
	if options.PageSize != "" {
		pageSize, err = strconv.Atoi(options.PageSize)
		if err != nil || pageSize < 1 || pageSize > maxPageSize {
			return 0, 0, apierrors.NewInvalidFilterMessage("page_size must be an integer between 1 and 1000")
		}
	}
	return page, pageSize, nil
}
