package student

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=student_repo.go -destination=mock/student_repo_mock.go -package=mock
type Repository interface {
	SeedMissing(ctx context.Context, students []Student) error
	FindAllOrdered(ctx context.Context) ([]Student, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// SeedMissing inserts roster entries that do not exist yet. Rows whose roll
// number is already taken are left untouched, so re-seeding is idempotent.
func (r *repository) SeedMissing(ctx context.Context, students []Student) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "roll_number"}},
			DoNothing: true,
		}).
		Create(&students).Error
}

func (r *repository) FindAllOrdered(ctx context.Context) ([]Student, error) {
	var rows []Student
	err := r.db.WithContext(ctx).
		Order("roll_number ASC").
		Find(&rows).Error
	return rows, err
}
