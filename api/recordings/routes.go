package recordings

import (
	"github.com/flowiq/ingest-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers recording read routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/recordings?tenant_id=... - List a tenant's recordings
	router.GET("", List(deps))

	// GET /api/v1/recordings/:id - Get a single recording
	router.GET("/:id", GetByID(deps))
}
