package jobservice

import (
	"github.com/equinor/workload-analyzer/api/utils"
	"github.com/equinor/workload-analyzer/models"
)

// The job service speaks PascalCase JSON with request metadata nested under
// Metadata. Records are decoded into explicit structs and mapped field by
// field; unknown upstream fields are dropped deliberately.

type upstreamJobsResponse struct {
	Jobs              []upstreamJob `json:"Jobs"`
	Count             int           `json:"Count"`
	ContinuationToken string        `json:"ContinuationToken"`
}

type upstreamJobMetadata struct {
	RequestedOn   string `json:"RequestedOn"`
	LastUpdatedOn string `json:"LastUpdatedOn"`
	RequestedBy   string `json:"RequestedBy"`
	LastUpdatedBy string `json:"LastUpdatedBy"`
}

type upstreamJob struct {
	JobRequestID            string               `json:"JobRequestID"`
	Name                    string               `json:"Name"`
	Description             string               `json:"Description"`
	Type                    string               `json:"Type"`
	JobRequestStatus        string               `json:"JobRequestStatus"`
	JobRequestStatusDetails string               `json:"JobRequestStatusDetails"`
	PlatformID              string               `json:"PlatformID"`
	PlatformName            string               `json:"PlatformName"`
	TenantID                string               `json:"TenantID"`
	Queue                   string               `json:"Queue"`
	RequestedOn             string               `json:"RequestedOn"`
	LastUpdatedOn           string               `json:"LastUpdatedOn"`
	RequestedBy             string               `json:"RequestedBy"`
	LastUpdatedBy           string               `json:"LastUpdatedBy"`
	CompletedOn             string               `json:"CompletedOn"`
	Metadata                *upstreamJobMetadata `json:"Metadata"`
}

// flatten folds the nested Metadata fields into the top-level record. Some
// job service endpoints nest them, others do not; top-level values win.
func (u upstreamJob) flatten() upstreamJob {
	if u.Metadata == nil {
		return u
	}
	if u.RequestedOn == "" {
		u.RequestedOn = u.Metadata.RequestedOn
	}
	if u.LastUpdatedOn == "" {
		u.LastUpdatedOn = u.Metadata.LastUpdatedOn
	}
	if u.RequestedBy == "" {
		u.RequestedBy = u.Metadata.RequestedBy
	}
	if u.LastUpdatedBy == "" {
		u.LastUpdatedBy = u.Metadata.LastUpdatedBy
	}
	return u
}

func (u upstreamJob) toJob() models.Job {
	flattened := u.flatten()
	return models.Job{
		ID:          flattened.JobRequestID,
		Name:        flattened.Name,
		Description: flattened.Description,
		Type:        models.JobType(flattened.Type),
		Status:      models.JobStatus(flattened.JobRequestStatus),
		PlatformID:  flattened.PlatformID,
		Queue:       flattened.Queue,
		Owner:       flattened.RequestedBy,
		CreatedAt:   utils.ParseOptionalTimestamp(flattened.RequestedOn),
		LastUpdated: utils.ParseOptionalTimestamp(flattened.LastUpdatedOn),
	}
}

func (u upstreamJob) toJobDetail() models.JobDetail {
	flattened := u.flatten()
	return models.JobDetail{
		Job:           flattened.toJob(),
		TenantID:      flattened.TenantID,
		PlatformName:  flattened.PlatformName,
		CompletedAt:   utils.ParseOptionalTimestamp(flattened.CompletedOn),
		ErrorMessage:  flattened.JobRequestStatusDetails,
		LastUpdatedBy: flattened.LastUpdatedBy,
	}
}
