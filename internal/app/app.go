package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classtrack/internal/attendance"
	"classtrack/internal/shared/connection"
	"classtrack/internal/student"
)

// BuildApp connects the infrastructure, runs migrations and registers every
// module on the router. The returned func closes the connections; callers
// must run it on shutdown.
func BuildApp(router *gin.Engine) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "classtrack"),
		envOr("DB_PASSWORD", "classtrack"),
		envOr("DB_NAME", "classtrack"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&student.Student{}, &attendance.Record{}); err != nil {
		return nil, err
	}
	if err := gormDB.Exec(outboxSchema).Error; err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(envOr("REDIS_ADDR", "localhost:6379"), 5)
	if err != nil {
		// Redis only backs the roster cache and idempotency replay; the API
		// stays functional without it.
		zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}

	if err := registerModules(router, sqlDB, gormDB, rdb); err != nil {
		return nil, err
	}

	cleanup := func() {
		_ = sqlDB.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return cleanup, nil
}

// outboxSchema matches the columns the outbox repository reads and writes.
const outboxSchema = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id varchar(64) NOT NULL DEFAULT '',
	aggregate_type varchar(40) NOT NULL,
	aggregate_id varchar(64) NOT NULL,
	event_type varchar(40) NOT NULL,
	topic varchar(120) NOT NULL,
	payload jsonb NOT NULL,
	status varchar(10) NOT NULL,
	retry_count int NOT NULL DEFAULT 0,
	error_message varchar(500),
	next_retry_at timestamptz,
	processed_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT NOW(),
	updated_at timestamptz NOT NULL DEFAULT NOW()
)`

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
