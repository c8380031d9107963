package jobservice

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/equinor/workload-analyzer/models"
)

// Platform endpoints. The listing is a deliberate passthrough: caller query
// parameters and the upstream payload are relayed verbatim, since the
// platform filter vocabulary belongs to the job service.

type upstreamPlatform struct {
	PlatformID            string   `json:"PlatformID"`
	PlatformName          string   `json:"PlatformName"`
	PlatformType          string   `json:"PlatformType"`
	Description           string   `json:"Description"`
	SimicsPlatformVersion string   `json:"SimicsPlatformVersion"`
	SimicsPlatformRelease string   `json:"SimicsPlatformRelease"`
	PlatformMemorySize    *float64 `json:"PlatformMemorySize"`
}

// ListPlatforms relays the caller's query parameters and returns the raw
// upstream payload.
func (c *Client) ListPlatforms(ctx context.Context, params url.Values, credential string) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.getJSON(ctx, "/v1/platforms", params, credential, "", "", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetPlatform returns a single platform mapped into the gateway's shape.
func (c *Client) GetPlatform(ctx context.Context, platformID, credential string) (*models.Platform, error) {
	var payload upstreamPlatform
	if err := c.getJSON(ctx, "/v1/platforms/platform/"+url.PathEscape(platformID), nil, credential, "platform", platformID, &payload); err != nil {
		return nil, err
	}

	platform := models.Platform{
		ID:          payload.PlatformID,
		Name:        payload.PlatformName,
		Description: payload.Description,
		IsAvailable: true,
	}
	if platform.ID == "" {
		platform.ID = platformID
	}
	// The job service only distinguishes simulated platforms explicitly.
	if payload.PlatformType == "Simics" {
		platform.Type = "Simulation"
	} else {
		platform.Type = "Virtual"
	}
	if payload.SimicsPlatformVersion != "" {
		platform.Version = payload.SimicsPlatformVersion
	} else {
		platform.Version = payload.SimicsPlatformRelease
	}
	if payload.PlatformMemorySize != nil {
		platform.MaxMemoryGB = *payload.PlatformMemorySize
	}
	return &platform, nil
}
