package student

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	students := r.Group("/students")
	{
		students.POST("/seed", h.Seed)
		students.GET("", h.List)
	}
}
