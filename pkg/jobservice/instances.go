package jobservice

import (
	"context"
	"net/url"
	"strconv"

	"github.com/equinor/workload-analyzer/models"
)

// Instance endpoints use the job service's legacy offset/limit pagination,
// unlike the continuation-token convention on /jobs. The two conventions are
// distinct upstream contracts and are kept apart on purpose.

// InstanceFilters Validated filters for the instance listing.
type InstanceFilters struct {
	PlatformID string
	Available  *bool
	Limit      int
	Offset     int
}

// ListInstances returns one offset-paged slice of instances.
func (c *Client) ListInstances(ctx context.Context, filters InstanceFilters, credential string) ([]models.Instance, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(filters.Limit))
	params.Set("offset", strconv.Itoa(filters.Offset))
	if filters.PlatformID != "" {
		params.Set("platform_id", filters.PlatformID)
	}
	if filters.Available != nil {
		params.Set("available", strconv.FormatBool(*filters.Available))
	}

	var payload struct {
		Instances []models.Instance `json:"instances"`
	}
	if err := c.getJSON(ctx, "/v1/instances", params, credential, "", "", &payload); err != nil {
		return nil, err
	}
	return payload.Instances, nil
}

// GetInstance returns a single instance.
func (c *Client) GetInstance(ctx context.Context, instanceID, credential string) (*models.Instance, error) {
	var instance models.Instance
	if err := c.getJSON(ctx, "/v1/instances/"+url.PathEscape(instanceID), nil, credential, "instance", instanceID, &instance); err != nil {
		return nil, err
	}
	return &instance, nil
}
