package fileservice

import (
	"regexp"
	"strings"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
)

const tenantHostPlaceholder = "{tenant}"

var tenantNameExpression = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// Resolver maps a tenant identifier to the base URL of that tenant's file gateway.
// Explicit per-tenant overrides win over the host template.
type Resolver struct {
	template  string
	overrides map[string]string
}

func NewResolver(config *models.Config) *Resolver {
	return &Resolver{
		template:  config.FileServiceHostTemplate,
		overrides: config.FileServiceTenantHosts,
	}
}

// ResolveHost returns the gateway base URL for the tenant. Tenant identifiers
// become part of a hostname, so anything outside the DNS label alphabet is
// rejected before any request is made.
func (r *Resolver) ResolveHost(tenantID string) (string, error) {
	if !tenantNameExpression.MatchString(tenantID) {
		return "", apierrors.NewInvalidTenant(tenantID)
	}
	if host, ok := r.overrides[tenantID]; ok {
		return strings.TrimSuffix(host, "/"), nil
	}
	return strings.TrimSuffix(strings.ReplaceAll(r.template, tenantHostPlaceholder, tenantID), "/"), nil
}
