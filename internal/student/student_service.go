package student

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RosterCacheKey holds the JSON roster list. The roster only changes on
// seeding, which deletes the key, so reads stay consistent with the store.
const RosterCacheKey = "students:roster"

const rosterCacheTTL = time.Hour

// SeedSize is how many placeholder students a seed run guarantees.
const SeedSize = 20

//go:generate mockgen -source=student_service.go -destination=mock/student_service_mock.go -package=mock
type Service interface {
	Seed(ctx context.Context) ([]StudentResponse, error)
	List(ctx context.Context) ([]StudentResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("student.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("student.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Seed upserts "Student 1".."Student 20" keyed by roll number. Existing rows
// keep their stored name, matching insert-only upsert semantics. Returns the
// full roster afterwards.
func (s *service) Seed(ctx context.Context) ([]StudentResponse, error) {
	toSeed := make([]Student, 0, SeedSize)
	for i := 1; i <= SeedSize; i++ {
		toSeed = append(toSeed, Student{
			ID:         uuid.New(),
			Name:       fmt.Sprintf("Student %d", i),
			RollNumber: i,
		})
	}

	if err := s.repo.SeedMissing(ctx, toSeed); err != nil {
		s.logger.Error("seed students failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	// The roster changed (or may have): drop the cached copy before reading.
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, RosterCacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate roster cache",
				zap.Error(err),
				zap.String("key", RosterCacheKey),
			)
		}
	}

	rows, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("students seeded", zap.Int("roster_size", len(rows)))
	return mapToListResponse(rows), nil
}

// List serves the roster from cache when possible; cache misses collapse into
// a single store read via singleflight.
func (s *service) List(ctx context.Context) ([]StudentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, RosterCacheKey).Result(); err == nil {
			var resp []StudentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(RosterCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllOrdered(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, RosterCacheKey, jsonData, rosterCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]StudentResponse), nil
}

func mapToResponse(st Student) StudentResponse {
	return StudentResponse{
		ID:         st.ID.String(),
		Name:       st.Name,
		RollNumber: st.RollNumber,
	}
}

func mapToListResponse(rows []Student) []StudentResponse {
	res := make([]StudentResponse, len(rows))
	for i, st := range rows {
		res[i] = mapToResponse(st)
	}
	return res
}
