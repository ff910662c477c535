package attendance

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"classtrack/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	records := r.Group("/attendance")
	{
		records.POST("/mark", h.Mark)
		records.POST("", h.Upsert)
		records.POST("/batch", middleware.Idempotency(rdb), h.MarkBatch)
		records.GET("", h.List)
		records.GET("/all", h.ListAll)
		records.GET("/today", h.Today)
		records.GET("/range", h.Range)
		records.GET("/by-student/:rollNumber", h.ByRollNumber)
		records.GET("/student/:studentId", h.ByStudent)
		records.DELETE("/:id", h.Delete)
	}
}
