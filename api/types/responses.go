package types

import "github.com/flowiq/ingest-api/internal/models"

// WebhookResponse is the envelope returned by the Plaud webhook endpoint.
// Only success is always present; the other fields depend on the branch.
type WebhookResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message,omitempty"`
	RecordingID  string      `json:"recordingId,omitempty"`
	TenantName   string      `json:"tenantName,omitempty"`
	Status       string      `json:"status,omitempty"`
	Error        string      `json:"error,omitempty"`
	ReceivedData interface{} `json:"receivedData,omitempty"`
	Timestamp    string      `json:"timestamp,omitempty"`
}

// RecordingListResponse wraps a tenant's recordings
type RecordingListResponse struct {
	Recordings []models.VoiceRecording `json:"recordings"`
	Count      int                     `json:"count"`
}

// ErrorResponse is the generic error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
