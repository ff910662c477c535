package student

import (
	"time"

	"github.com/google/uuid"
)

// Student is one roster entry. RollNumber is the stable external key the
// roll-call grid sorts and seeds by.
type Student struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name       string    `gorm:"column:name;type:varchar(120);not null"`
	RollNumber int       `gorm:"column:roll_number;not null;uniqueIndex:uq_student_roll_number"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Student) TableName() string {
	return "students"
}
