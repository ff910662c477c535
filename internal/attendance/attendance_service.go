package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	attendanceerrors "classtrack/internal/attendance/errors"
	"classtrack/internal/events"
	"classtrack/internal/messaging/kafka"
	"classtrack/internal/shared/contextutil"
	"classtrack/internal/shared/daywindow"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)
	Upsert(ctx context.Context, req UpsertRequest) (RecordResponse, error)
	MarkBatch(ctx context.Context, req BatchRequest) (int, error)
	ListAll(ctx context.Context) ([]RecordResponse, error)
	ListByDay(ctx context.Context, date string) ([]RecordResponse, error)
	ListToday(ctx context.Context) ([]RecordResponse, error)
	ListByRange(ctx context.Context, from, to string) ([]RecordResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]RecordResponse, error)
	ListByRollNumber(ctx context.Context, rollNumber string) ([]RecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, logger...)
}

func NewServiceWithOutbox(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, outbox: outbox, logger: l}
}

// Mark inserts a record dated now. Unlike Upsert it never reconciles against
// an existing row; it mirrors the plain "mark" form of the tracker.
func (s *service) Mark(ctx context.Context, req MarkRequest) (RecordResponse, error) {
	status := Status(req.Status)
	if !status.Valid() {
		return RecordResponse{}, attendanceerrors.ErrInvalidStatus
	}

	rec := &Record{
		ID:          uuid.New(),
		StudentName: req.StudentName,
		RollNumber:  req.RollNumber,
		Date:        time.Now().UTC(),
		Status:      status,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("mark persist failed", zap.Error(err))
		return RecordResponse{}, err
	}

	s.enqueueMarked(ctx, rec)
	s.logger.Info("attendance marked", zap.String("record_id", rec.ID.String()))
	return mapToResponse(*rec), nil
}

// Upsert finds the record for (studentId, day window of date) and overwrites
// it, or creates one. RollNumber always ends up non-empty: when the caller
// omits it, the stringified studentId is stored instead. StudentName is only
// overwritten when explicitly provided; creation defaults it to "".
func (s *service) Upsert(ctx context.Context, req UpsertRequest) (RecordResponse, error) {
	if req.StudentID == "" || req.Date == "" || req.Status == "" {
		return RecordResponse{}, attendanceerrors.ErrMissingStudentID
	}
	status := Status(req.Status)
	if !status.Valid() {
		return RecordResponse{}, attendanceerrors.ErrInvalidStatus
	}
	selected, err := daywindow.Parse(req.Date)
	if err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidDate
	}
	start, end := daywindow.Window(selected)

	rollNumber := req.RollNumber
	if rollNumber == "" {
		rollNumber = req.StudentID
	}

	rec, err := s.repo.FindByStudentInWindow(ctx, req.StudentID, start, end)
	switch {
	case err == nil:
		rec.Status = status
		rec.RollNumber = rollNumber
		if req.StudentName != nil {
			rec.StudentName = *req.StudentName
		}
		if err := s.repo.Save(ctx, rec); err != nil {
			s.logger.Error("upsert update failed", zap.String("student_id", req.StudentID), zap.Error(err))
			return RecordResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := ""
		if req.StudentName != nil {
			name = *req.StudentName
		}
		rec = &Record{
			ID:          uuid.New(),
			StudentID:   req.StudentID,
			StudentName: name,
			RollNumber:  rollNumber,
			Date:        selected,
			Status:      status,
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			s.logger.Error("upsert insert failed", zap.String("student_id", req.StudentID), zap.Error(err))
			return RecordResponse{}, err
		}
	default:
		return RecordResponse{}, err
	}

	s.enqueueMarked(ctx, rec)
	s.logger.Info("attendance upserted",
		zap.String("record_id", rec.ID.String()),
		zap.String("student_id", req.StudentID),
		zap.String("status", string(status)),
	)
	return mapToResponse(*rec), nil
}

// MarkBatch applies the per-day upsert for each entry independently. Entries
// without a studentId are skipped. The batch is not transactional: when entry
// N fails, entries before it stay committed and the error is surfaced with
// the count written so far.
func (s *service) MarkBatch(ctx context.Context, req BatchRequest) (int, error) {
	if req.Date == "" || len(req.Records) == 0 {
		return 0, attendanceerrors.ErrEmptyBatch
	}
	selected, err := daywindow.Parse(req.Date)
	if err != nil {
		return 0, attendanceerrors.ErrInvalidDate
	}
	start, end := daywindow.Window(selected)

	count := 0
	for _, entry := range req.Records {
		if entry.StudentID == "" {
			continue
		}
		status := Status(entry.Status)
		if entry.Status == "" {
			status = StatusAbsent
		}
		if !status.Valid() {
			return count, attendanceerrors.ErrInvalidStatus
		}

		rec, err := s.repo.FindByStudentInWindow(ctx, entry.StudentID, start, end)
		switch {
		case err == nil:
			rec.Status = status
			if err := s.repo.Save(ctx, rec); err != nil {
				s.logger.Error("batch update failed", zap.String("student_id", entry.StudentID), zap.Error(err))
				return count, err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = &Record{
				ID:        uuid.New(),
				StudentID: entry.StudentID,
				Date:      selected,
				Status:    status,
			}
			if err := s.repo.Create(ctx, rec); err != nil {
				s.logger.Error("batch insert failed", zap.String("student_id", entry.StudentID), zap.Error(err))
				return count, err
			}
		default:
			return count, err
		}

		count++
		s.enqueueMarked(ctx, rec)
	}

	s.logger.Info("attendance batch saved", zap.String("date", req.Date), zap.Int("count", count))
	return count, nil
}

func (s *service) ListAll(ctx context.Context) ([]RecordResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// ListByDay returns the records inside the day window of date. An empty date
// behaves as ListAll.
func (s *service) ListByDay(ctx context.Context, date string) ([]RecordResponse, error) {
	if date == "" {
		return s.ListAll(ctx)
	}
	selected, err := daywindow.Parse(date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	start, end := daywindow.Window(selected)
	rows, err := s.repo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListToday(ctx context.Context) ([]RecordResponse, error) {
	start, end := daywindow.Window(time.Now())
	rows, err := s.repo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// ListByRange keeps the historical asymmetry on purpose: only the upper bound
// is extended to end-of-day; from is used exactly as parsed.
func (s *service) ListByRange(ctx context.Context, from, to string) ([]RecordResponse, error) {
	if from == "" || to == "" {
		return nil, attendanceerrors.ErrMissingRange
	}
	fromDate, err := daywindow.Parse(from)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	toDate, err := daywindow.Parse(to)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	_, toEnd := daywindow.Window(toDate)

	rows, err := s.repo.FindBetween(ctx, fromDate, toEnd)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListByStudent(ctx context.Context, studentID string) ([]RecordResponse, error) {
	rows, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListByRollNumber(ctx context.Context, rollNumber string) ([]RecordResponse, error) {
	rows, err := s.repo.FindByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// Delete hard-deletes one record. Unknown and unparsable ids both report not
// found, since neither names an existing record.
func (s *service) Delete(ctx context.Context, id string) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return attendanceerrors.ErrRecordNotFound
	}
	affected, err := s.repo.DeleteByID(ctx, recordID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return attendanceerrors.ErrRecordNotFound
	}

	s.enqueueDeleted(ctx, recordID.String())
	s.logger.Info("attendance record deleted", zap.String("record_id", recordID.String()))
	return nil
}

// enqueueMarked is best effort: the record write already succeeded, so an
// outbox failure is logged and the request still succeeds.
func (s *service) enqueueMarked(ctx context.Context, rec *Record) {
	if s.outbox == nil {
		return
	}
	event := events.AttendanceMarkedEvent{
		EventType:  events.TypeAttendanceMarked,
		RequestID:  contextutil.GetRequestID(ctx),
		RecordID:   rec.ID.String(),
		StudentID:  rec.StudentID,
		Date:       rec.Date.Format(time.RFC3339),
		Status:     string(rec.Status),
		OccurredAt: time.Now().UTC(),
	}
	s.enqueue(ctx, rec.ID.String(), event.EventType, event)
}

func (s *service) enqueueDeleted(ctx context.Context, recordID string) {
	if s.outbox == nil {
		return
	}
	event := events.AttendanceDeletedEvent{
		EventType:  events.TypeAttendanceDeleted,
		RequestID:  contextutil.GetRequestID(ctx),
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
	}
	s.enqueue(ctx, recordID, event.EventType, event)
}

func (s *service) enqueue(ctx context.Context, recordID, eventType string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("record_id", recordID), zap.Error(err))
		return
	}
	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance_record",
		AggregateID:   recordID,
		EventType:     eventType,
		Topic:         events.AttendanceTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("outbox enqueue failed", zap.String("record_id", recordID), zap.Error(err))
	}
}

func mapToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:          rec.ID.String(),
		StudentID:   rec.StudentID,
		StudentName: rec.StudentName,
		RollNumber:  rec.RollNumber,
		Date:        rec.Date.Format(time.RFC3339),
		Status:      string(rec.Status),
	}
}

func mapToListResponse(rows []Record) []RecordResponse {
	res := make([]RecordResponse, len(rows))
	for i, rec := range rows {
		res[i] = mapToResponse(rec)
	}
	return res
}
