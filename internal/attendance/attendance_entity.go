package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Status is the closed set of attendance states.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Record is one student's attendance for one calendar day. StudentName and
// RollNumber are denormalized so records created without a roster link stay
// renderable on their own.
type Record struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StudentID   string    `gorm:"column:student_id;type:varchar(64);index"`
	StudentName string    `gorm:"column:student_name;type:varchar(120)"`
	RollNumber  string    `gorm:"column:roll_number;type:varchar(32);index"`
	Date        time.Time `gorm:"column:date;type:timestamptz;not null;index"`
	Status      Status    `gorm:"column:status;type:varchar(10);not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "attendance_records"
}
