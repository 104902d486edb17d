package tenants

import (
	"context"

	"github.com/flowiq/ingest-api/internal/models"
)

// ByNameResolver resolves strictly by tenant name. An empty name is a
// resolution failure.
type ByNameResolver struct {
	repo Repository
}

// NewByNameResolver creates a resolver that requires an exact tenant name match
func NewByNameResolver(repo Repository) *ByNameResolver {
	return &ByNameResolver{repo: repo}
}

// Resolve looks up the active configuration for the named tenant
func (r *ByNameResolver) Resolve(ctx context.Context, tenantName string) (*models.PlaudConfigWithTenant, error) {
	if tenantName == "" {
		return nil, ErrNoActiveConfig
	}
	return r.repo.FindActiveByTenantName(ctx, tenantName)
}

// FirstActiveResolver resolves to an arbitrary single active configuration,
// ignoring the tenant name entirely.
//
// This is a single-tenant-deployment convenience, NOT a security boundary:
// in a multi-tenant deployment an unnamed webhook lands on whichever active
// configuration the store returns first.
type FirstActiveResolver struct {
	repo Repository
}

// NewFirstActiveResolver creates the first-active fallback resolver
func NewFirstActiveResolver(repo Repository) *FirstActiveResolver {
	return &FirstActiveResolver{repo: repo}
}

// Resolve returns the first active configuration regardless of tenantName
func (r *FirstActiveResolver) Resolve(ctx context.Context, tenantName string) (*models.PlaudConfigWithTenant, error) {
	return r.repo.FindFirstActive(ctx)
}

// PayloadResolver picks the by-name strategy when the payload names a tenant
// and falls back to first-active otherwise. This mirrors the upstream
// handler's behavior; remove the fallback by wiring ByNameResolver alone.
type PayloadResolver struct {
	byName      Resolver
	firstActive Resolver
}

// NewPayloadResolver composes the two strategies over one repository
func NewPayloadResolver(repo Repository) *PayloadResolver {
	return &PayloadResolver{
		byName:      NewByNameResolver(repo),
		firstActive: NewFirstActiveResolver(repo),
	}
}

// Resolve dispatches on whether the payload carried a tenant name
func (r *PayloadResolver) Resolve(ctx context.Context, tenantName string) (*models.PlaudConfigWithTenant, error) {
	if tenantName != "" {
		return r.byName.Resolve(ctx, tenantName)
	}
	return r.firstActive.Resolve(ctx, tenantName)
}
