package events

import "time"

const AttendanceTopic = "classroom.attendance.v1"

const (
	TypeAttendanceMarked  = "attendance_marked"
	TypeAttendanceDeleted = "attendance_deleted"
)

// AttendanceMarkedEvent is emitted after every successful insert or
// in-place status update of an attendance record.
type AttendanceMarkedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	StudentID  string    `json:"student_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AttendanceDeletedEvent is emitted after a hard delete.
type AttendanceDeletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
