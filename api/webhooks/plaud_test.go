package webhooks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flowiq/ingest-api/api/types"
	"github.com/flowiq/ingest-api/api/webhooks"
	"github.com/flowiq/ingest-api/internal/models"
	"github.com/flowiq/ingest-api/internal/services/ingestion"
	"github.com/flowiq/ingest-api/internal/services/recordings"
	"github.com/flowiq/ingest-api/internal/services/tenants"
	"github.com/flowiq/ingest-api/internal/services/transcription"
	"github.com/flowiq/ingest-api/pkg/fetch"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubTranscriber struct {
	result *transcription.Result
	err    error
	calls  int
}

func (s *stubTranscriber) Transcribe(ctx context.Context, req *transcription.Request) (*transcription.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type webhookHarness struct {
	db          *gorm.DB
	router      *gin.Engine
	transcriber *stubTranscriber
}

func setupHarness(t *testing.T, transcriber *stubTranscriber) *webhookHarness {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.PlaudConfig{}, &models.VoiceRecording{}))

	recordingService := recordings.NewService(recordings.NewRepository(db))
	deps := &types.Dependencies{
		RecordingService: recordingService,
		Transcriber:      transcriber,
		Ingestion: ingestion.NewService(
			tenants.NewPayloadResolver(tenants.NewRepository(db)),
			recordingService,
			transcriber,
			fetch.NewFetcher(fetch.DefaultOptions()),
		),
	}

	router := gin.New()
	group := router.Group("/api/v1/webhooks")
	webhooks.RegisterRoutes(group, deps)

	return &webhookHarness{db: db, router: router, transcriber: transcriber}
}

func (h *webhookHarness) seedTenant(t *testing.T, name, userID string) {
	tenant := &models.Tenant{Name: name, Specialty: "cardiology"}
	require.NoError(t, h.db.Create(tenant).Error)
	require.NoError(t, h.db.Create(&models.PlaudConfig{
		TenantID: tenant.ID,
		UserID:   userID,
		Active:   true,
	}).Error)
}

func (h *webhookHarness) post(t *testing.T, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/plaud", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "response was not JSON: %s", w.Body.String())
	return w, response
}

func TestPlaudWebhook_ConnectivityTest(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})

	w, resp := harness.post(t, gin.H{"test": true, "source": "zapier"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Webhook received successfully", resp["message"])
	assert.NotEmpty(t, resp["timestamp"])

	received, ok := resp["receivedData"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "zapier", received["source"])

	var count int64
	require.NoError(t, harness.db.Model(&models.VoiceRecording{}).Count(&count).Error)
	assert.Zero(t, count, "connectivity tests must have no side effects")
}

func TestPlaudWebhook_TimestampOnlyIsConnectivityTest(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})

	w, resp := harness.post(t, gin.H{"timestamp": "2026-08-29T10:00:00Z"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
}

func TestPlaudWebhook_UnrecognizedPayload(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})

	w, resp := harness.post(t, gin.H{"something": "else"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])

	// The rejected payload is echoed back for the operator
	received, ok := resp["receivedData"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "else", received["something"])
}

func TestPlaudWebhook_InvalidJSON(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/plaud", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	harness.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaudWebhook_RecordingWithoutAudio(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})
	harness.seedTenant(t, "Acme Clinic", "user-1")

	w, resp := harness.post(t, gin.H{
		"recording_id": "rec-42",
		"filename":     "visit.mp3",
		"tenant_name":  "Acme Clinic",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Acme Clinic", resp["tenantName"])
	assert.Equal(t, "stored", resp["status"])
	assert.NotEmpty(t, resp["recordingId"])
	assert.Zero(t, harness.transcriber.calls)

	var rec models.VoiceRecording
	require.NoError(t, harness.db.Where("recording_id = ?", "rec-42").First(&rec).Error)
	assert.Equal(t, models.RecordingStatusFailed, rec.Status)
}

func TestPlaudWebhook_RecordingEndToEnd(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{result: &transcription.Result{
		Transcription: "patient presents with",
		Summary:       "follow-up in two weeks",
	}})
	harness.seedTenant(t, "Acme Clinic", "user-1")

	audio := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("fake-audio-bytes"))
	}))
	defer audio.Close()

	w, resp := harness.post(t, gin.H{
		"recording_id": "rec-42",
		"download_url": audio.URL,
		"filename":     "visit.mp3",
		"duration":     "30",
		"tenant_name":  "Acme Clinic",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "processing", resp["status"])
	assert.Equal(t, 1, harness.transcriber.calls)

	var rec models.VoiceRecording
	require.NoError(t, harness.db.Where("recording_id = ?", "rec-42").First(&rec).Error)
	assert.Equal(t, models.RecordingStatusCompleted, rec.Status)
	assert.Equal(t, "patient presents with", rec.Transcription)
}

func TestPlaudWebhook_TranscriptionFailureStillReturns200(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{err: errors.New("capability offline")})
	harness.seedTenant(t, "Acme Clinic", "user-1")

	audio := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bytes"))
	}))
	defer audio.Close()

	w, resp := harness.post(t, gin.H{
		"recording_id": "rec-42",
		"download_url": audio.URL,
		"tenant_name":  "Acme Clinic",
	})

	// The response reports dispatch, the row records the failure
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "processing", resp["status"])

	var rec models.VoiceRecording
	require.NoError(t, harness.db.Where("recording_id = ?", "rec-42").First(&rec).Error)
	assert.Equal(t, models.RecordingStatusFailed, rec.Status)
}

func TestPlaudWebhook_UnknownTenantIs400(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})
	harness.seedTenant(t, "Acme Clinic", "user-1")

	w, resp := harness.post(t, gin.H{
		"recording_id": "rec-42",
		"tenant_name":  "Ghost Clinic",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "Ghost Clinic")

	var count int64
	require.NoError(t, harness.db.Model(&models.VoiceRecording{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaudWebhook_NumericRecordingID(t *testing.T) {
	// Some relays deliver recording_id as a JSON number
	harness := setupHarness(t, &stubTranscriber{})
	harness.seedTenant(t, "Acme Clinic", "user-1")

	w, _ := harness.post(t, gin.H{
		"recording_id": 9001,
		"tenant_name":  "Acme Clinic",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var rec models.VoiceRecording
	require.NoError(t, harness.db.Where("recording_id = ?", "9001").First(&rec).Error)
}

func TestPlaudWebhook_RecordingMarkersWinOverTestFlag(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})
	harness.seedTenant(t, "Acme Clinic", "user-1")

	w, resp := harness.post(t, gin.H{
		"test":         true,
		"recording_id": "rec-42",
		"tenant_name":  "Acme Clinic",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp["recordingId"], "recording markers take precedence over the test flag")
}

func TestPlaudWebhook_DuplicateDeliveryCreatesSecondRow(t *testing.T) {
	harness := setupHarness(t, &stubTranscriber{})
	harness.seedTenant(t, "Acme Clinic", "user-1")

	for i := 0; i < 2; i++ {
		w, _ := harness.post(t, gin.H{
			"recording_id": "rec-dup",
			"tenant_name":  "Acme Clinic",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	var count int64
	require.NoError(t, harness.db.Model(&models.VoiceRecording{}).
		Where("recording_id = ?", "rec-dup").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
