package webhooks

import (
	"net/http"
	"strconv"
	"time"

	"github.com/flowiq/ingest-api/api/types"
	"github.com/flowiq/ingest-api/internal/services/ingestion"
	apperrors "github.com/flowiq/ingest-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// HandlePlaud ingests Plaud recording notifications relayed by the Zapier
// automation.
//
// Three payload shapes are recognized:
//   - a recording notification (recording_id or download_url present)
//   - a connectivity test (truthy test flag or a timestamp field)
//   - anything else, which is rejected with 400
//
// Recording markers win when both are present. The caller is not
// authenticated; the automation tool is trusted by deployment.
//
// @Summary      Ingest a Plaud recording notification
// @Description  Accepts the Zapier-relayed webhook for a Plaud voice recording. A connectivity
// @Description  test (test flag or bare timestamp) is acknowledged without side effects. A recording
// @Description  notification resolves the owning tenant, fetches the audio when a download_url is
// @Description  given, persists a VoiceRecording row, and dispatches transcription best-effort.
// @Description  Transcription failures never fail this response; the row carries the failure.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        payload body map[string]interface{} true "Webhook payload"
// @Success      200 {object} types.WebhookResponse "Acknowledgement or ingestion result"
// @Failure      400 {object} types.WebhookResponse "Unrecognized payload or unresolvable tenant"
// @Failure      500 {object} types.WebhookResponse "Storage failure before transcription"
// @Router       /api/v1/webhooks/plaud [post]
func HandlePlaud(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid JSON body: " + err.Error(),
			})
			return
		}

		switch {
		case hasRecordingMarkers(payload):
			handleRecordingNotification(c, deps, payload)

		case isConnectivityTest(payload):
			c.JSON(http.StatusOK, gin.H{
				"success":      true,
				"message":      "Webhook received successfully",
				"receivedData": payload,
				"timestamp":    time.Now().UTC().Format(time.RFC3339),
			})

		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"success":      false,
				"error":        "Unrecognized payload: expected a connectivity test or a recording notification",
				"receivedData": payload,
			})
		}
	}
}

// handleRecordingNotification drives the ingestion pipeline and maps its
// outcome to the webhook response contract
func handleRecordingNotification(c *gin.Context, deps *types.Dependencies, payload map[string]interface{}) {
	if deps == nil || deps.Ingestion == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Ingestion service not available",
		})
		return
	}

	outcome, err := deps.Ingestion.Ingest(c.Request.Context(), ingestion.Notification{
		RecordingID: stringField(payload, "recording_id"),
		DownloadURL: stringField(payload, "download_url"),
		Filename:    stringField(payload, "filename"),
		Duration:    stringField(payload, "duration"),
		CreatedAt:   stringField(payload, "created_at"),
		TenantName:  stringField(payload, "tenant_name"),
		Raw:         payload,
	})
	if err != nil {
		c.JSON(apperrors.GetHTTPCode(err), gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"recordingId": outcome.Recording.ID,
		"tenantName":  outcome.TenantName,
		"status":      outcome.ResponseStatus(),
	})
}

// hasRecordingMarkers reports whether the payload announces a recording
func hasRecordingMarkers(payload map[string]interface{}) bool {
	return stringField(payload, "recording_id") != "" || stringField(payload, "download_url") != ""
}

// isConnectivityTest reports whether the payload is the automation tool
// probing reachability
func isConnectivityTest(payload map[string]interface{}) bool {
	if isTruthy(payload["test"]) {
		return true
	}
	_, hasTimestamp := payload["timestamp"]
	return hasTimestamp
}

// isTruthy mirrors the loose truthiness the relay's payloads rely on
func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	case float64:
		return v != 0
	default:
		return true
	}
}

// stringField extracts a field as a string, tolerating JSON numbers
func stringField(payload map[string]interface{}, key string) string {
	switch v := payload[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
