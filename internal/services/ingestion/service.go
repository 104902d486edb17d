package ingestion

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/flowiq/ingest-api/internal/models"
	"github.com/flowiq/ingest-api/internal/services/recordings"
	"github.com/flowiq/ingest-api/internal/services/tenants"
	"github.com/flowiq/ingest-api/internal/services/transcription"
	apperrors "github.com/flowiq/ingest-api/pkg/errors"
	"github.com/flowiq/ingest-api/pkg/fetch"
)

// AudioFetcher pulls a download_url into memory
type AudioFetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// Notification is a recording-available webhook, already shape-checked by
// the handler
type Notification struct {
	RecordingID string
	DownloadURL string
	Filename    string
	Duration    string // device relay sends seconds as a string, e.g. "30"
	CreatedAt   string
	TenantName  string
	Raw         map[string]interface{} // full inbound payload for the audit blob
}

// Outcome is the result of one ingestion attempt
type Outcome struct {
	Recording  *models.VoiceRecording
	TenantName string
	Dispatched bool // audio bytes were obtained and sent for transcription
}

// ResponseStatus is the coarse status reported back to the automation tool:
// "processing" when audio was dispatched, "stored" otherwise. The row itself
// may have already resolved to completed or failed by the time we respond.
func (o *Outcome) ResponseStatus() string {
	if o.Dispatched {
		return string(models.RecordingStatusProcessing)
	}
	return string(models.RecordingStatusStored)
}

// Service drives a recording notification through tenant resolution,
// storage, and best-effort transcription.
//
// Processing is sequential and at-most-once: the row is written before the
// network-bound transcription step so an outage leaves an auditable failed
// row instead of silently dropping the notification. Redelivery policy
// belongs to the upstream automation tool; a redelivered recording_id
// creates a second row.
type Service struct {
	resolver    tenants.Resolver
	recordings  recordings.Service
	transcriber transcription.Transcriber
	fetcher     AudioFetcher
}

// NewService creates a new ingestion service
func NewService(resolver tenants.Resolver, recordingService recordings.Service, transcriber transcription.Transcriber, fetcher AudioFetcher) *Service {
	return &Service{
		resolver:    resolver,
		recordings:  recordingService,
		transcriber: transcriber,
		fetcher:     fetcher,
	}
}

// Ingest runs the full pipeline for one notification
func (s *Service) Ingest(ctx context.Context, n Notification) (*Outcome, error) {
	receivedAt := time.Now().UTC()

	// 1. Tenant resolution. No resolvable active configuration means no
	// records are created at all.
	config, err := s.resolver.Resolve(ctx, n.TenantName)
	if err != nil {
		if tenants.IsNoActiveConfig(err) {
			if n.TenantName != "" {
				return nil, apperrors.TenantResolutionError("no active Plaud configuration for tenant '" + n.TenantName + "'")
			}
			return nil, apperrors.TenantResolutionError("no active Plaud configuration found")
		}
		return nil, apperrors.DatabaseError("tenant lookup", err)
	}

	// 2. Optional audio fetch. Failure is logged and treated as "no audio
	// available"; it does not abort the request.
	var audio *fetch.Result
	var fetchErrMsg string
	if n.DownloadURL != "" {
		audio, err = s.fetcher.Fetch(ctx, n.DownloadURL)
		if err != nil {
			log.Printf("[ERROR] Audio fetch failed for recording %s: %v", n.RecordingID, err)
			fetchErrMsg = err.Error()
			audio = nil
		}
	}

	// 3. Record creation. The raw payload, resolved tenant name, and
	// receipt timestamp land in metadata regardless of outcome.
	recording := &models.VoiceRecording{
		RecordingID:     n.RecordingID,
		TenantID:        config.TenantID,
		Filename:        n.Filename,
		Source:          models.SourcePlaud,
		Status:          models.RecordingStatusFailed,
		DurationSeconds: parseDurationSeconds(n.Duration),
		AudioURL:        n.DownloadURL,
		Metadata: models.JSONMap{
			"webhook_payload": n.Raw,
			"tenant_name":     config.TenantName,
			"received_at":     receivedAt.Format(time.RFC3339),
		},
	}
	if audio != nil {
		recording.Status = models.RecordingStatusProcessing
		recording.FileSizeBytes = audio.ContentLength
	}
	if fetchErrMsg != "" {
		recording.Metadata["error"] = "audio fetch failed: " + fetchErrMsg
	}

	if err := s.recordings.Create(ctx, recording); err != nil {
		return nil, apperrors.DatabaseError("recording insert", err)
	}

	outcome := &Outcome{
		Recording:  recording,
		TenantName: config.TenantName,
		Dispatched: audio != nil,
	}

	// 4. Transcription dispatch, only with audio in hand. Failures flip the
	// row to failed but never the HTTP response: the attempt is already
	// durably recorded.
	if audio != nil {
		s.dispatchTranscription(ctx, outcome, config, n, audio)
	}

	return outcome, nil
}

// dispatchTranscription invokes the external capability and applies the
// result to the already-persisted row
func (s *Service) dispatchTranscription(ctx context.Context, outcome *Outcome, config *models.PlaudConfigWithTenant, n Notification, audio *fetch.Result) {
	userID := config.UserID
	if userID == "" {
		userID = transcription.WebhookUserID
	}

	result, err := s.transcriber.Transcribe(ctx, &transcription.Request{
		Audio:       audio.Base64(),
		UserID:      userID,
		TenantID:    config.TenantID,
		RecordingID: outcome.Recording.ID,
		Source:      models.SourcePlaud,
		Metadata: map[string]interface{}{
			"filename":    n.Filename,
			"duration":    n.Duration,
			"origin_url":  n.DownloadURL,
			"created_at":  n.CreatedAt,
			"tenant_name": config.TenantName,
		},
	})
	if err != nil {
		log.Printf("[ERROR] Transcription failed for recording %s: %v", outcome.Recording.ID, err)
		failed, ferr := s.recordings.FailProcessing(ctx, outcome.Recording.ID, err.Error())
		if ferr != nil {
			log.Printf("[ERROR] Failed to mark recording %s as failed: %v", outcome.Recording.ID, ferr)
			return
		}
		outcome.Recording = failed
		return
	}

	completed, err := s.recordings.CompleteProcessing(ctx, outcome.Recording.ID, recordings.ProcessingResult{
		Transcription: result.Transcription,
		Summary:       result.Summary,
		SOAPNotes:     result.SOAPNotes,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to mark recording %s as completed: %v", outcome.Recording.ID, err)
		return
	}
	outcome.Recording = completed
}

// parseDurationSeconds converts the relay's string duration to seconds.
// Unparseable values are dropped rather than failing the request.
func parseDurationSeconds(raw string) *int {
	if raw == "" {
		return nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &seconds
}
