package models

// JobsPage The native job-listing contract: list plus continuation token, as
// issued by the job service. Deliberately not reshaped into the legacy
// page-number contract used for other resource kinds.
type JobsPage struct {
	// Jobs Jobs in this page, upstream order preserved
	Jobs []Job `json:"jobs"`
	// Count Total matching jobs reported by the job service
	Count int `json:"count"`
	// ContinuationToken Opaque cursor for the next page. Omitted when the
	// upstream indicates no further pages.
	ContinuationToken string `json:"continuation_token,omitempty"`
}

// PaginationMeta Legacy page metadata retained for non-job resource kinds.
type PaginationMeta struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPaginationMeta derives the page metadata for the legacy listing shape.
// HasNext and HasPrevious are computed from page and total_pages, never
// supplied independently.
func NewPaginationMeta(total, page, pageSize int) PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// InstanceListResponse Legacy-shaped listing for instances.
type InstanceListResponse struct {
	Items          []Instance     `json:"items"`
	Meta           PaginationMeta `json:"meta"`
	FiltersApplied map[string]any `json:"filters_applied,omitempty"`
	SortBy         string         `json:"sort_by,omitempty"`
	SortOrder      string         `json:"sort_order,omitempty"`
}

// JobDetailResponse Single-job payload with the derived artifact count.
type JobDetailResponse struct {
	Job JobDetail `json:"job"`
	// FileCount Number of artifact files currently listed for the job.
	// Omitted when the file service could not be queried.
	FileCount *int `json:"file_count,omitempty"`
}

// FileListResponse Artifact file listing for one job.
type FileListResponse struct {
	Files      []string `json:"files"`
	TotalFiles int      `json:"total_files"`
	JobID      string   `json:"job_id"`
}

// AnalysisResponse Answer from the hosted language-model backend.
type AnalysisResponse struct {
	Answer string `json:"answer"`
	Model  string `json:"model"`
}

// HealthResponse Liveness payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
