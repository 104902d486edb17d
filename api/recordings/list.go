package recordings

import (
	"log"
	"net/http"
	"strconv"

	"github.com/flowiq/ingest-api/api/types"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// List returns a tenant's voice recordings, newest first
//
// @Summary      List voice recordings for a tenant
// @Description  Returns recordings scoped to a tenant, newest first. The tenant_id query parameter is required.
// @Tags         recordings
// @Produce      json
// @Param        tenant_id query string true "Tenant ID"
// @Param        limit query int false "Maximum rows to return (default 50, max 200)"
// @Success      200 {object} types.RecordingListResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/recordings [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.Query("tenant_id")
		if tenantID == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "tenant_id query parameter is required"})
			return
		}

		limit := defaultListLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "limit must be a positive integer"})
				return
			}
			limit = parsed
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}

		rows, err := deps.RecordingService.ListByTenant(c.Request.Context(), tenantID, limit)
		if err != nil {
			log.Printf("[ERROR] Failed to list recordings for tenant %s: %v", tenantID, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to list recordings"})
			return
		}

		c.JSON(http.StatusOK, types.RecordingListResponse{
			Recordings: rows,
			Count:      len(rows),
		})
	}
}
