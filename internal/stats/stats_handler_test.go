package stats_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"classtrack/internal/attendance"
	attendanceerrors "classtrack/internal/attendance/errors"
	"classtrack/internal/stats"
	"classtrack/internal/student"
)

type fakeAttendance struct {
	byDayFn     func(ctx context.Context, date string) ([]attendance.RecordResponse, error)
	byStudentFn func(ctx context.Context, studentID string) ([]attendance.RecordResponse, error)
}

func (f *fakeAttendance) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendance) Upsert(ctx context.Context, req attendance.UpsertRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendance) MarkBatch(ctx context.Context, req attendance.BatchRequest) (int, error) {
	return 0, nil
}

func (f *fakeAttendance) ListAll(ctx context.Context) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendance) ListByDay(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	return f.byDayFn(ctx, date)
}

func (f *fakeAttendance) ListToday(ctx context.Context) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendance) ListByRange(ctx context.Context, from, to string) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendance) ListByStudent(ctx context.Context, studentID string) ([]attendance.RecordResponse, error) {
	return f.byStudentFn(ctx, studentID)
}

func (f *fakeAttendance) ListByRollNumber(ctx context.Context, rollNumber string) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendance) Delete(ctx context.Context, id string) error { return nil }

type fakeStudents struct {
	roster []student.StudentResponse
}

func (f *fakeStudents) Seed(ctx context.Context) ([]student.StudentResponse, error) {
	return f.roster, nil
}

func (f *fakeStudents) List(ctx context.Context) ([]student.StudentResponse, error) {
	return f.roster, nil
}

func newTestRouter(att attendance.Service, st student.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	stats.RegisterRoutes(router.Group("/api/v1"), stats.NewHandler(att, st))
	return router
}

func get(router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env map[string]json.RawMessage
	_ = json.Unmarshal(rr.Body.Bytes(), &env)
	return rr, env
}

func TestHandler_Summary(t *testing.T) {
	var gotDate string
	att := &fakeAttendance{
		byDayFn: func(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
			gotDate = date
			return []attendance.RecordResponse{
				{StudentID: "s1", Status: "Present"},
				{StudentID: "s2", Status: "Absent"},
			}, nil
		},
	}
	router := newTestRouter(att, &fakeStudents{})

	rr, env := get(router, "/api/v1/stats/summary?date=2024-01-05")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2024-01-05", gotDate)

	var got stats.Summary
	assert.NoError(t, json.Unmarshal(env["data"], &got))
	assert.Equal(t, stats.Summary{Total: 2, Present: 1, Absent: 1, Percent: "50.0"}, got)
}

func TestHandler_Summary_InvalidDate(t *testing.T) {
	att := &fakeAttendance{
		byDayFn: func(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
			return nil, attendanceerrors.ErrInvalidDate
		},
	}
	router := newTestRouter(att, &fakeStudents{})

	rr, _ := get(router, "/api/v1/stats/summary?date=bogus")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_StudentSummary(t *testing.T) {
	att := &fakeAttendance{
		byStudentFn: func(ctx context.Context, studentID string) ([]attendance.RecordResponse, error) {
			assert.Equal(t, "s1", studentID)
			return []attendance.RecordResponse{
				{StudentID: "s1", Status: "Present"},
				{StudentID: "s1", Status: "Present"},
				{StudentID: "s1", Status: "Absent"},
				{StudentID: "s1", Status: "Present"},
			}, nil
		},
	}
	router := newTestRouter(att, &fakeStudents{})

	rr, env := get(router, "/api/v1/stats/student/s1")
	assert.Equal(t, http.StatusOK, rr.Code)

	var got stats.Summary
	assert.NoError(t, json.Unmarshal(env["data"], &got))
	assert.Equal(t, "75.0", got.Percent)
}

func TestHandler_RollCallGrid_DefaultsDateToToday(t *testing.T) {
	var gotDate string
	att := &fakeAttendance{
		byDayFn: func(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
			gotDate = date
			return nil, nil
		},
	}
	roster := []student.StudentResponse{{ID: "s1", Name: "Student 1", RollNumber: 1}}
	router := newTestRouter(att, &fakeStudents{roster: roster})

	rr, env := get(router, "/api/v1/stats/rollcall")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, time.Now().Format("2006-01-02"), gotDate)

	var got stats.RollCall
	assert.NoError(t, json.Unmarshal(env["data"], &got))
	assert.Len(t, got.Entries, 1)
	assert.Equal(t, "Absent", got.Entries[0].Status)
	assert.Equal(t, 1, got.Summary.Total)
}
