package tenants

import (
	"context"
	"errors"

	"github.com/flowiq/ingest-api/internal/models"
	"gorm.io/gorm"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new Plaud configuration repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const joinSelect = "plaud_configs.id, plaud_configs.tenant_id, plaud_configs.user_id, plaud_configs.active, " +
	"tenants.name AS tenant_name, tenants.specialty AS tenant_specialty"

// FindActiveByTenantName returns the active configuration for the exactly
// matching tenant name
func (r *repository) FindActiveByTenantName(ctx context.Context, tenantName string) (*models.PlaudConfigWithTenant, error) {
	var config models.PlaudConfigWithTenant

	result := r.db.WithContext(ctx).
		Table("plaud_configs").
		Select(joinSelect).
		Joins("JOIN tenants ON tenants.id = plaud_configs.tenant_id").
		Where("plaud_configs.active = ? AND plaud_configs.deleted_at IS NULL", true).
		Where("tenants.name = ?", tenantName).
		Limit(1).
		Scan(&config)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNoActiveConfig
	}

	return &config, nil
}

// FindFirstActive returns an arbitrary single active configuration
func (r *repository) FindFirstActive(ctx context.Context) (*models.PlaudConfigWithTenant, error) {
	var config models.PlaudConfigWithTenant

	result := r.db.WithContext(ctx).
		Table("plaud_configs").
		Select(joinSelect).
		Joins("JOIN tenants ON tenants.id = plaud_configs.tenant_id").
		Where("plaud_configs.active = ? AND plaud_configs.deleted_at IS NULL", true).
		Limit(1).
		Scan(&config)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNoActiveConfig
	}

	return &config, nil
}

// IsNoActiveConfig reports whether err means resolution found nothing
func IsNoActiveConfig(err error) bool {
	return errors.Is(err, ErrNoActiveConfig)
}
