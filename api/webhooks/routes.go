package webhooks

import (
	"github.com/flowiq/ingest-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers webhook ingestion routes.
// OPTIONS preflights are answered by the global CORS middleware.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/plaud", HandlePlaud(deps))
}
