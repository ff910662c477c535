package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classtrack/internal/attendance"
	"classtrack/internal/shared/apperror"
	"classtrack/internal/shared/response"
	"classtrack/internal/student"
)

type Handler struct {
	attendance attendance.Service
	students   student.Service
	logger     *zap.Logger
}

func NewHandler(attendanceService attendance.Service, studentService student.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("stats.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.handler")
	}
	return &Handler{attendance: attendanceService, students: studentService, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("stats request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Summary aggregates one day's records, or every record when no date is
// given.
func (h *Handler) Summary(c *gin.Context) {
	records, err := h.attendance.ListByDay(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, Summarize(records), nil)
}

func (h *Handler) StudentSummary(c *gin.Context) {
	records, err := h.attendance.ListByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, Summarize(records), nil)
}

// RollCallGrid renders the roster against one day's records. The date
// defaults to today.
func (h *Handler) RollCallGrid(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	records, err := h.attendance.ListByDay(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	roster, err := h.students.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, BuildRollCall(date, roster, records), nil)
}
