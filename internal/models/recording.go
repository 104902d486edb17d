package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordingStatus represents the lifecycle state of a voice recording
type RecordingStatus string

const (
	// RecordingStatusProcessing means audio was obtained and transcription
	// has been (or is about to be) dispatched.
	RecordingStatusProcessing RecordingStatus = "processing"
	// RecordingStatusCompleted means transcription succeeded.
	RecordingStatusCompleted RecordingStatus = "completed"
	// RecordingStatusFailed means audio fetch or transcription failed.
	RecordingStatusFailed RecordingStatus = "failed"
	// RecordingStatusStored means the notification was persisted with no
	// audio to transcribe.
	RecordingStatusStored RecordingStatus = "stored"
)

// SourcePlaud tags recordings relayed from the Plaud device export.
// Other device integrations would register their own source tag.
const SourcePlaud = "plaud"

// CanTransitionTo reports whether the status may move to next within a
// single ingestion request. Transitions are monotonic: processing may
// resolve to completed or failed, everything else is terminal.
func (s RecordingStatus) CanTransitionTo(next RecordingStatus) bool {
	if s != RecordingStatusProcessing {
		return false
	}
	return next == RecordingStatusCompleted || next == RecordingStatusFailed
}

// IsTerminal returns true if no further status change is allowed
func (s RecordingStatus) IsTerminal() bool {
	return s != RecordingStatusProcessing
}

// JSONMap stores an arbitrary JSON object in a json column
type JSONMap map[string]interface{}

// Value implements driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, m)
}

// VoiceRecording is one ingested recording notification.
//
// The external recording_id is deliberately not unique: a redelivered
// webhook creates a second row. Deduplication is an open product decision
// and must not be added silently.
type VoiceRecording struct {
	ID          string          `json:"id" gorm:"primarykey;type:uuid"`
	RecordingID string          `json:"recording_id" gorm:"index"`
	TenantID    string          `json:"tenant_id" gorm:"not null;index"`
	Filename    string          `json:"filename"`
	Source      string          `json:"source" gorm:"default:'plaud';index"`
	Status      RecordingStatus `json:"status" gorm:"not null;index"`

	DurationSeconds *int   `json:"duration_seconds"`
	FileSizeBytes   int64  `json:"file_size_bytes"`
	AudioURL        string `json:"audio_url"`

	Transcription string  `json:"transcription" gorm:"type:text"`
	Summary       string  `json:"summary" gorm:"type:text"`
	SOAPNotes     JSONMap `json:"soap_notes" gorm:"type:json"`
	Metadata      JSONMap `json:"metadata" gorm:"type:json"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ProcessedAt *time.Time `json:"processed_at"`
}

// BeforeCreate generates the recording ID if one was not supplied
func (r *VoiceRecording) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// TableName specifies the table name for VoiceRecording
func (VoiceRecording) TableName() string {
	return "voice_recordings"
}

// MergeMetadata folds the given keys into the metadata blob, preserving
// existing entries
func (r *VoiceRecording) MergeMetadata(extra map[string]interface{}) {
	if r.Metadata == nil {
		r.Metadata = make(JSONMap)
	}
	for k, v := range extra {
		r.Metadata[k] = v
	}
}
