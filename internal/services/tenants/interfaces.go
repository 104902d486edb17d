package tenants

import (
	"context"
	"errors"

	"github.com/flowiq/ingest-api/internal/models"
)

// ErrNoActiveConfig is returned when no active Plaud configuration can be
// resolved for an inbound webhook.
var ErrNoActiveConfig = errors.New("no active plaud configuration found")

// Repository defines read access to Plaud configurations
type Repository interface {
	// FindActiveByTenantName returns the single active configuration whose
	// joined tenant name matches exactly
	FindActiveByTenantName(ctx context.Context, tenantName string) (*models.PlaudConfigWithTenant, error)

	// FindFirstActive returns an arbitrary single active configuration
	FindFirstActive(ctx context.Context) (*models.PlaudConfigWithTenant, error)
}

// Resolver maps an inbound webhook to the tenant configuration that owns it.
// Implementations are injectable so the ambiguous single-tenant fallback can
// be swapped out or removed without touching the handler.
type Resolver interface {
	// Resolve returns the active configuration for the given tenant name.
	// Implementations decide what an empty tenantName means.
	Resolve(ctx context.Context, tenantName string) (*models.PlaudConfigWithTenant, error)
}
