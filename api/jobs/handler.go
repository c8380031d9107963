package jobs

import (
	"context"

	"github.com/equinor/radix-common/utils/pointers"
	"github.com/equinor/workload-analyzer/internal/query"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/fileservice"
	"github.com/equinor/workload-analyzer/pkg/jobservice"
	"github.com/rs/zerolog/log"
)

type Handler interface {
	// GetJobs returns a page of jobs matching the given filters.
	GetJobs(ctx context.Context, filters query.Filters, credential string) (*models.JobsPage, error)
	// GetJob returns the detail of a single job.
	GetJob(ctx context.Context, jobID, credential string) (*models.JobDetailResponse, error)
	// GetJobFiles lists the files of a job on its tenant's file gateway.
	GetJobFiles(ctx context.Context, jobID, credential string) (*models.FileListResponse, error)
	// DownloadJobFile opens a content stream for one of a job's files.
	DownloadJobFile(ctx context.Context, jobID, filename, credential string) (*fileservice.Download, error)
}

type handler struct {
	jobs  *jobservice.Client
	files *fileservice.Client
}

func New(jobs *jobservice.Client, files *fileservice.Client) Handler {
	return &handler{jobs: jobs, files: files}
}

func (h *handler) GetJobs(ctx context.Context, filters query.Filters, credential string) (*models.JobsPage, error) {
	normalized, err := query.Normalize(filters)
	if err != nil {
		return nil, err
	}
	return h.jobs.ListJobs(ctx, normalized, credential)
}

func (h *handler) GetJob(ctx context.Context, jobID, credential string) (*models.JobDetailResponse, error) {
	job, err := h.jobs.GetJob(ctx, jobID, credential)
	if err != nil {
		return nil, err
	}

	response := &models.JobDetailResponse{Job: *job}
	// The file count is decoration on the detail. A gateway hiccup must not
	// hide a job that the job service just returned.
	if names, err := h.files.ListFiles(ctx, job.TenantID, job.ID, job.Type, credential); err == nil {
		response.FileCount = pointers.Ptr(len(names))
	} else {
		log.Ctx(ctx).Warn().Err(err).Str("jobId", jobID).Msg("Could not count job files")
	}
	return response, nil
}

// GetJobFiles resolves the job first so the gateway host always comes from the
// tenant recorded on the job, never from the caller.
func (h *handler) GetJobFiles(ctx context.Context, jobID, credential string) (*models.FileListResponse, error) {
	job, err := h.jobs.GetJob(ctx, jobID, credential)
	if err != nil {
		return nil, err
	}
	names, err := h.files.ListFiles(ctx, job.TenantID, job.ID, job.Type, credential)
	if err != nil {
		return nil, err
	}
	return &models.FileListResponse{
		Files:      names,
		TotalFiles: len(names),
		JobID:      job.ID,
	}, nil
}

func (h *handler) DownloadJobFile(ctx context.Context, jobID, filename, credential string) (*fileservice.Download, error) {
	job, err := h.jobs.GetJob(ctx, jobID, credential)
	if err != nil {
		return nil, err
	}
	return h.files.DownloadFile(ctx, job.TenantID, job.ID, filename, job.Type, credential)
}
