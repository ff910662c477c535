package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	Save(ctx context.Context, rec *Record) error
	FindByStudentInWindow(ctx context.Context, studentID string, start, end time.Time) (*Record, error)
	FindAll(ctx context.Context) ([]Record, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]Record, error)
	FindByStudent(ctx context.Context, studentID string) ([]Record, error)
	FindByRollNumber(ctx context.Context, rollNumber string) ([]Record, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Save(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) FindByStudentInWindow(ctx context.Context, studentID string, start, end time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Where("date BETWEEN ? AND ?", start, end).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindBetween(ctx context.Context, from, to time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStudent(ctx context.Context, studentID string) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByRollNumber(ctx context.Context, rollNumber string) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("roll_number = ?", rollNumber).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Record{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
