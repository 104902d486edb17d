package recordings

import (
	"context"

	"github.com/flowiq/ingest-api/internal/models"
)

// ProcessingResult carries the output of a successful transcription dispatch
type ProcessingResult struct {
	Transcription string
	Summary       string
	SOAPNotes     map[string]interface{}
}

// Service defines the interface for voice recording lifecycle operations
type Service interface {
	// Create persists the initial row for an inbound notification
	Create(ctx context.Context, recording *models.VoiceRecording) error

	// CompleteProcessing transitions a processing row to completed with the
	// transcription output
	CompleteProcessing(ctx context.Context, id string, result ProcessingResult) (*models.VoiceRecording, error)

	// FailProcessing transitions a processing row to failed, merging the
	// error message into metadata
	FailProcessing(ctx context.Context, id string, errMsg string) (*models.VoiceRecording, error)

	// GetByID retrieves a recording by its generated id
	GetByID(ctx context.Context, id string) (*models.VoiceRecording, error)

	// ListByTenant returns recordings for a tenant, newest first
	ListByTenant(ctx context.Context, tenantID string, limit int) ([]models.VoiceRecording, error)
}

// Repository defines the interface for voice recording persistence
type Repository interface {
	// Create creates a new recording row
	Create(ctx context.Context, recording *models.VoiceRecording) error

	// Update saves an existing recording row
	Update(ctx context.Context, recording *models.VoiceRecording) error

	// GetByID retrieves a recording by its generated id
	GetByID(ctx context.Context, id string) (*models.VoiceRecording, error)

	// ListByTenant returns recordings for a tenant, newest first
	ListByTenant(ctx context.Context, tenantID string, limit int) ([]models.VoiceRecording, error)
}
