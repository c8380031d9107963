package models

import "time"

// JobStatus Status values assigned by the job service. The set is fixed and
// case-sensitive; filters are validated against it before any upstream call.
type JobStatus string

const (
	JobStatusRequested     JobStatus = "requested"
	JobStatusQueued        JobStatus = "queued"
	JobStatusAllocating    JobStatus = "allocating"
	JobStatusAllocated     JobStatus = "allocated"
	JobStatusBooting       JobStatus = "booting"
	JobStatusInProgress    JobStatus = "inprogress"
	JobStatusCheckpointing JobStatus = "checkpointing"
	JobStatusDone          JobStatus = "done"
	JobStatusError         JobStatus = "error"
	JobStatusReleasing     JobStatus = "releasing"
	JobStatusReleased      JobStatus = "released"
	JobStatusComplete      JobStatus = "complete"
)

var jobStatuses = []JobStatus{
	JobStatusRequested,
	JobStatusQueued,
	JobStatusAllocating,
	JobStatusAllocated,
	JobStatusBooting,
	JobStatusInProgress,
	JobStatusCheckpointing,
	JobStatusDone,
	JobStatusError,
	JobStatusReleasing,
	JobStatusReleased,
	JobStatusComplete,
}

// IsValid reports whether s is a recognized job status.
func (s JobStatus) IsValid() bool {
	for _, known := range jobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// JobStatusValues returns the recognized status values in declaration order.
func JobStatusValues() []string {
	values := make([]string, 0, len(jobStatuses))
	for _, status := range jobStatuses {
		values = append(values, string(status))
	}
	return values
}

// JobType Workload types supported by the job service.
type JobType string

const (
	JobTypeInstance       JobType = "Instance"
	JobTypeWorkloadJob    JobType = "WorkloadJob"
	JobTypeWorkloadJobROI JobType = "WorkloadJobROI"
	JobTypeIWPS           JobType = "IWPS"
	JobTypeISIM           JobType = "ISIM"
	JobTypeCoho           JobType = "Coho"
	JobTypeNovaCoho       JobType = "NovaCoho"
	JobTypeCustom         JobType = "Custom"
)

var jobTypes = []JobType{
	JobTypeInstance,
	JobTypeWorkloadJob,
	JobTypeWorkloadJobROI,
	JobTypeIWPS,
	JobTypeISIM,
	JobTypeCoho,
	JobTypeNovaCoho,
	JobTypeCustom,
}

// IsValid reports whether t is a recognized job type.
func (t JobType) IsValid() bool {
	for _, known := range jobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// JobTypeValues returns the recognized job type values in declaration order.
func JobTypeValues() []string {
	values := make([]string, 0, len(jobTypes))
	for _, jobType := range jobTypes {
		values = append(values, string(jobType))
	}
	return values
}

// Job A job record as listed by the job service.
type Job struct {
	// ID Service-assigned identifier, stable for the job's lifetime
	ID string `json:"job_id"`
	// Name Human-readable job name
	Name string `json:"name"`
	// Description Free-text description
	Description string `json:"description,omitempty"`
	// Type Workload type
	Type JobType `json:"job_type"`
	// Status Current status
	Status JobStatus `json:"status,omitempty"`
	// PlatformID Platform the job targets
	PlatformID string `json:"platform_id,omitempty"`
	// Queue Queue the job was submitted to
	Queue string `json:"queue,omitempty"`
	// Owner User that requested the job
	Owner string `json:"owner,omitempty"`
	// CreatedAt When the job was requested
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// LastUpdated When the job record last changed
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// JobDetail Full job record as returned by the single-job endpoint. TenantID
// is authoritative per job and drives file-service routing; it is never
// defaulted or cached across jobs.
type JobDetail struct {
	Job
	// TenantID Isolation boundary used to pick the file-service host
	TenantID string `json:"tenant_id,omitempty"`
	// PlatformName Resolved platform name
	PlatformName string `json:"platform_name,omitempty"`
	// CompletedAt When the job reached a terminal state
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage Status details reported by the job service
	ErrorMessage string `json:"error_message,omitempty"`
	// LastUpdatedBy User or system that last changed the record
	LastUpdatedBy string `json:"last_updated_by,omitempty"`
}
