package types

import (
	"github.com/flowiq/ingest-api/internal/database"
	"github.com/flowiq/ingest-api/internal/services/ingestion"
	"github.com/flowiq/ingest-api/internal/services/recordings"
	"github.com/flowiq/ingest-api/internal/services/tenants"
	"github.com/flowiq/ingest-api/internal/services/transcription"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	TenantResolver   tenants.Resolver
	RecordingService recordings.Service
	Transcriber      transcription.Transcriber
	Ingestion        *ingestion.Service
}
