package student_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"classtrack/internal/student"
)

type fakeService struct {
	seedFn func(ctx context.Context) ([]student.StudentResponse, error)
	listFn func(ctx context.Context) ([]student.StudentResponse, error)
}

func (f *fakeService) Seed(ctx context.Context) ([]student.StudentResponse, error) {
	return f.seedFn(ctx)
}

func (f *fakeService) List(ctx context.Context) ([]student.StudentResponse, error) {
	return f.listFn(ctx)
}

func newTestRouter(svc student.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	student.RegisterRoutes(router.Group("/api/v1"), student.NewHandler(svc))
	return router
}

func TestHandler_Seed(t *testing.T) {
	roster := []student.StudentResponse{
		{ID: "a", Name: "Student 1", RollNumber: 1},
		{ID: "b", Name: "Student 2", RollNumber: 2},
	}
	router := newTestRouter(&fakeService{
		seedFn: func(ctx context.Context) ([]student.StudentResponse, error) { return roster, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/seed", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var env struct {
		Ok   bool                      `json:"ok"`
		Data []student.StudentResponse `json:"data"`
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.Equal(t, roster, env.Data)
	assert.Equal(t, 2, env.Meta.Count)
}

func TestHandler_List_InternalError(t *testing.T) {
	router := newTestRouter(&fakeService{
		listFn: func(ctx context.Context) ([]student.StudentResponse, error) {
			return nil, errors.New("connection refused")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var env struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
}
