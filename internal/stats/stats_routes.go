package stats

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	stats := r.Group("/stats")
	{
		stats.GET("/summary", h.Summary)
		stats.GET("/student/:studentId", h.StudentSummary)
		stats.GET("/rollcall", h.RollCallGrid)
	}
}
