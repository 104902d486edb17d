package recordings

import (
	"context"
	"errors"

	"github.com/flowiq/ingest-api/internal/models"
	"gorm.io/gorm"
)

// ErrRecordingNotFound is returned when a recording id does not exist
var ErrRecordingNotFound = errors.New("recording not found")

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new voice recording repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new recording row
func (r *repository) Create(ctx context.Context, recording *models.VoiceRecording) error {
	if recording == nil {
		return errors.New("recording cannot be nil")
	}

	result := r.db.WithContext(ctx).Create(recording)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update saves an existing recording row
func (r *repository) Update(ctx context.Context, recording *models.VoiceRecording) error {
	if recording == nil {
		return errors.New("recording cannot be nil")
	}

	result := r.db.WithContext(ctx).Save(recording)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// GetByID retrieves a recording by its generated id
func (r *repository) GetByID(ctx context.Context, id string) (*models.VoiceRecording, error) {
	var recording models.VoiceRecording

	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recording)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordingNotFound
		}
		return nil, result.Error
	}

	return &recording, nil
}

// ListByTenant returns recordings for a tenant, newest first
func (r *repository) ListByTenant(ctx context.Context, tenantID string, limit int) ([]models.VoiceRecording, error) {
	var recordings []models.VoiceRecording

	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recordings).Error; err != nil {
		return nil, err
	}

	return recordings, nil
}
