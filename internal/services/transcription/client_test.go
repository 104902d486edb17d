package transcription

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe_Success(t *testing.T) {
	var received Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Result{
			Transcription: "hello",
			Summary:       "note",
			SOAPNotes:     map[string]interface{}{"subjective": "ok"},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})

	result, err := client.Transcribe(context.Background(), &Request{
		Audio:       "YXVkaW8=",
		UserID:      WebhookUserID,
		TenantID:    "tenant-1",
		RecordingID: "rec-1",
		Source:      "plaud",
		Metadata:    map[string]interface{}{"filename": "a.mp3"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", result.Transcription)
	assert.Equal(t, "note", result.Summary)
	assert.Equal(t, "ok", result.SOAPNotes["subjective"])

	assert.Equal(t, "YXVkaW8=", received.Audio)
	assert.Equal(t, "webhook-user", received.UserID)
	assert.Equal(t, "rec-1", received.RecordingID)
}

func TestTranscribe_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Transcribe(context.Background(), &Request{Audio: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestTranscribe_MissingBaseURL(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.Transcribe(context.Background(), &Request{Audio: "x"})
	assert.Error(t, err)
}

func TestTranscribe_NilRequest(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:1"})

	_, err := client.Transcribe(context.Background(), nil)
	assert.Error(t, err)
}
