package app

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"classtrack/internal/attendance"
	"classtrack/internal/messaging/kafka"
	"classtrack/internal/middleware"
	"classtrack/internal/stats"
	"classtrack/internal/student"
)

func registerModules(
	router *gin.Engine,
	sqlDB *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimitByIP(10, 30))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		status := http.StatusOK
		if err := sqlDB.Ping(); err != nil {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": http.StatusText(status)})
	})

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	studentRepo := student.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- Services ---
	attendanceService := attendance.NewServiceWithOutbox(attendanceRepo, outboxRepo)
	studentService := student.NewService(studentRepo, rdb)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	studentHandler := student.NewHandler(studentService)
	statsHandler := stats.NewHandler(attendanceService, studentService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		student.RegisterRoutes(api, studentHandler)
		stats.RegisterRoutes(api, statsHandler)
	}

	return nil
}
