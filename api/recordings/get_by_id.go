package recordings

import (
	"errors"
	"log"
	"net/http"

	"github.com/flowiq/ingest-api/api/types"
	"github.com/flowiq/ingest-api/internal/services/recordings"
	"github.com/gin-gonic/gin"
)

// GetByID returns a single voice recording by its generated id
//
// @Summary      Get a voice recording
// @Description  Returns one voice recording row, including transcription output when completed
// @Tags         recordings
// @Produce      json
// @Param        id path string true "Recording ID"
// @Success      200 {object} models.VoiceRecording
// @Failure      404 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/recordings/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		recording, err := deps.RecordingService.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, recordings.ErrRecordingNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Recording not found"})
				return
			}
			log.Printf("[ERROR] Failed to fetch recording %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch recording"})
			return
		}

		c.JSON(http.StatusOK, recording)
	}
}
