package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant represents one customer practice using the platform.
// Rows are owned by the provisioning flow; this service only reads them.
type Tenant struct {
	ID        string    `json:"id" gorm:"primarykey;type:uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates the tenant ID if one was not supplied
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TableName specifies the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// PlaudConfig associates a tenant with Plaud device ingestion.
// Created and updated by the tenant-admin configuration UI; read-only here.
type PlaudConfig struct {
	gorm.Model
	TenantID string `json:"tenant_id" gorm:"not null;index"`
	UserID   string `json:"user_id" gorm:"not null"`
	Active   bool   `json:"active" gorm:"default:false;index"`
}

// TableName specifies the table name for PlaudConfig
func (PlaudConfig) TableName() string {
	return "plaud_configs"
}

// PlaudConfigWithTenant is a PlaudConfig row joined with its tenant's
// denormalized display fields. Kept flat so GORM can scan the join result
// directly.
type PlaudConfigWithTenant struct {
	ID              uint   `json:"id"`
	TenantID        string `json:"tenant_id"`
	UserID          string `json:"user_id"`
	Active          bool   `json:"active"`
	TenantName      string `json:"tenant_name"`
	TenantSpecialty string `json:"tenant_specialty"`
}
