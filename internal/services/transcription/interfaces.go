package transcription

import "context"

// WebhookUserID is the sentinel owner passed when the inbound webhook cannot
// be attributed to a real user.
const WebhookUserID = "webhook-user"

// Request is the contract of the external transcription capability
type Request struct {
	Audio       string                 `json:"audio"` // base64-encoded audio bytes
	UserID      string                 `json:"userId"`
	TenantID    string                 `json:"tenantId"`
	RecordingID string                 `json:"recordingId"`
	Source      string                 `json:"source"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// Result is the output of a successful transcription call
type Result struct {
	Transcription string                 `json:"transcription"`
	Summary       string                 `json:"summary"`
	SOAPNotes     map[string]interface{} `json:"soap_notes"`
}

// Transcriber invokes the external transcription capability
type Transcriber interface {
	Transcribe(ctx context.Context, req *Request) (*Result, error)
}
