package recordings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flowiq/ingest-api/internal/models"
)

// ErrInvalidTransition is returned when a status update would violate the
// recording state machine
var ErrInvalidTransition = errors.New("invalid recording status transition")

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new voice recording service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create persists the initial row for an inbound notification
func (s *service) Create(ctx context.Context, recording *models.VoiceRecording) error {
	if recording == nil {
		return errors.New("recording cannot be nil")
	}
	if recording.TenantID == "" {
		return errors.New("recording requires a tenant id")
	}
	if recording.Source == "" {
		recording.Source = models.SourcePlaud
	}

	return s.repo.Create(ctx, recording)
}

// CompleteProcessing transitions a processing row to completed with the
// transcription output
func (s *service) CompleteProcessing(ctx context.Context, id string, result ProcessingResult) (*models.VoiceRecording, error) {
	recording, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !recording.Status.CanTransitionTo(models.RecordingStatusCompleted) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, recording.Status, models.RecordingStatusCompleted)
	}

	now := time.Now().UTC()
	recording.Status = models.RecordingStatusCompleted
	recording.Transcription = result.Transcription
	recording.Summary = result.Summary
	recording.SOAPNotes = result.SOAPNotes
	recording.ProcessedAt = &now

	if err := s.repo.Update(ctx, recording); err != nil {
		return nil, err
	}

	return recording, nil
}

// FailProcessing transitions a processing row to failed, merging the error
// message into metadata
func (s *service) FailProcessing(ctx context.Context, id string, errMsg string) (*models.VoiceRecording, error) {
	recording, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !recording.Status.CanTransitionTo(models.RecordingStatusFailed) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, recording.Status, models.RecordingStatusFailed)
	}

	now := time.Now().UTC()
	recording.Status = models.RecordingStatusFailed
	recording.MergeMetadata(map[string]interface{}{
		"error":     errMsg,
		"failed_at": now.Format(time.RFC3339),
	})

	if err := s.repo.Update(ctx, recording); err != nil {
		return nil, err
	}

	return recording, nil
}

// GetByID retrieves a recording by its generated id
func (s *service) GetByID(ctx context.Context, id string) (*models.VoiceRecording, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByTenant returns recordings for a tenant, newest first
func (s *service) ListByTenant(ctx context.Context, tenantID string, limit int) ([]models.VoiceRecording, error) {
	if tenantID == "" {
		return nil, errors.New("tenant id is required")
	}
	return s.repo.ListByTenant(ctx, tenantID, limit)
}
