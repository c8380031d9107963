// Package query validates and canonicalizes caller-supplied job filters
// before they reach the job service. Validation is pure: no filter triggers
// an upstream call until the whole set has been accepted.
package query

import (
	"strconv"
	"strings"

	"github.com/equinor/radix-common/utils/slice"
	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
)

const (
	minLimit     = 1
	maxLimit     = 100
	defaultLimit = 100
)

// Filters Raw filter parameters as received on the wire.
type Filters struct {
	Status            string
	JobType           string
	Limit             string
	ContinuationToken string
	Owner             string
	Queue             string
	JobRequestID      string
	ParentInstanceID  string
	WorkloadJobROIID  string
}

// NormalizedFilters A validated, canonical filter set safe to forward.
type NormalizedFilters struct {
	Status            models.JobStatus
	JobTypes          []models.JobType
	Limit             int
	ContinuationToken string
	Owner             string
	Queue             string
	JobRequestID      string
	ParentInstanceID  string
	WorkloadJobROIID  string
}

// Normalize validates raw and produces the canonical filter set, or an
// InvalidFilter error naming the offending value. The continuation token is
// opaque and passed through untouched; the job service is the sole authority
// on its validity.
func Normalize(raw Filters) (NormalizedFilters, error) {
	normalized := NormalizedFilters{
		Limit:             defaultLimit,
		ContinuationToken: raw.ContinuationToken,
		Owner:             strings.TrimSpace(raw.Owner),
		Queue:             strings.TrimSpace(raw.Queue),
		JobRequestID:      strings.TrimSpace(raw.JobRequestID),
		ParentInstanceID:  strings.TrimSpace(raw.ParentInstanceID),
		WorkloadJobROIID:  strings.TrimSpace(raw.WorkloadJobROIID),
	}

	if raw.Status != "" {
		status := models.JobStatus(raw.Status)
		if !status.IsValid() {
			return NormalizedFilters{}, apierrors.NewInvalidFilter("status", raw.Status, models.JobStatusValues())
		}
		normalized.Status = status
	}

	if raw.JobType != "" {
		jobTypes, err := normalizeJobTypes(raw.JobType)
		if err != nil {
			return NormalizedFilters{}, err
		}
		normalized.JobTypes = jobTypes
	}

	if raw.Limit != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(raw.Limit))
		if err != nil || limit < minLimit || limit > maxLimit {
			return NormalizedFilters{}, apierrors.NewInvalidFilterMessage("limit must be an integer between 1 and 100")
		}
		normalized.Limit = limit
	}

	return normalized, nil
}

// normalizeJobTypes splits the comma-delimited list, trims each token and
// deduplicates while preserving first-seen order.
func normalizeJobTypes(rawJobType string) ([]models.JobType, error) {
	var jobTypes []models.JobType
	for _, token := range strings.Split(rawJobType, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		jobType := models.JobType(token)
		if !jobType.IsValid() {
			return nil, apierrors.NewInvalidFilter("job_type", token, models.JobTypeValues())
		}
		if !slice.Any(jobTypes, func(seen models.JobType) bool { return seen == jobType }) {
			jobTypes = append(jobTypes, jobType)
		}
	}
	return jobTypes, nil
}

// JobTypeParam renders the normalized job types back into the comma-delimited
// transport form expected by the job service.
func (f NormalizedFilters) JobTypeParam() string {
	tokens := slice.Map(f.JobTypes, func(jobType models.JobType) string { return string(jobType) })
	return strings.Join(tokens, ",")
}
