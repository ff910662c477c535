package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classtrack/internal/attendance"
	"classtrack/internal/student"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.0", Percent(0, 0))
	assert.Equal(t, "0.0", Percent(5, 0))
	assert.Equal(t, "100.0", Percent(4, 4))
	assert.Equal(t, "75.0", Percent(3, 4))
	assert.Equal(t, "33.3", Percent(1, 3))
	assert.Equal(t, "66.7", Percent(2, 3))
}

func TestSummarize(t *testing.T) {
	records := []attendance.RecordResponse{
		{StudentID: "s1", Status: "Present"},
		{StudentID: "s2", Status: "Absent"},
		{StudentID: "s3", Status: "Present"},
		{StudentID: "s4", Status: "Present"},
	}

	got := Summarize(records)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 3, got.Present)
	assert.Equal(t, 1, got.Absent)
	assert.Equal(t, "75.0", got.Percent)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)
	assert.Equal(t, Summary{Total: 0, Present: 0, Absent: 0, Percent: "0.0"}, got)
}

func TestBuildRollCall_DefaultsToAbsent(t *testing.T) {
	roster := []student.StudentResponse{
		{ID: "s1", Name: "Student 1", RollNumber: 1},
		{ID: "s2", Name: "Student 2", RollNumber: 2},
		{ID: "s3", Name: "Student 3", RollNumber: 3},
	}
	records := []attendance.RecordResponse{
		{StudentID: "s2", Status: "Present"},
	}

	got := BuildRollCall("2024-01-05", roster, records)

	assert.Equal(t, "2024-01-05", got.Date)
	assert.Len(t, got.Entries, 3)
	assert.Equal(t, "Absent", got.Entries[0].Status)
	assert.Equal(t, "Present", got.Entries[1].Status)
	assert.Equal(t, "Absent", got.Entries[2].Status)
}

func TestBuildRollCall_SummaryOverRosterSize(t *testing.T) {
	roster := []student.StudentResponse{
		{ID: "s1", Name: "Student 1", RollNumber: 1},
		{ID: "s2", Name: "Student 2", RollNumber: 2},
		{ID: "s3", Name: "Student 3", RollNumber: 3},
		{ID: "s4", Name: "Student 4", RollNumber: 4},
	}
	// Records for students off the roster do not count.
	records := []attendance.RecordResponse{
		{StudentID: "s1", Status: "Present"},
		{StudentID: "ghost", Status: "Present"},
	}

	got := BuildRollCall("2024-01-05", roster, records)

	assert.Equal(t, 4, got.Summary.Total)
	assert.Equal(t, 1, got.Summary.Present)
	assert.Equal(t, 3, got.Summary.Absent)
	assert.Equal(t, "25.0", got.Summary.Percent)
}

func TestBuildRollCall_EmptyRoster(t *testing.T) {
	got := BuildRollCall("2024-01-05", nil, nil)
	assert.Empty(t, got.Entries)
	assert.Equal(t, "0.0", got.Summary.Percent)
}

func TestBuildRollCall_RecordWithoutStudentIDIgnored(t *testing.T) {
	roster := []student.StudentResponse{{ID: "s1", Name: "Student 1", RollNumber: 1}}
	records := []attendance.RecordResponse{{Status: "Present"}}

	got := BuildRollCall("2024-01-05", roster, records)
	assert.Equal(t, "Absent", got.Entries[0].Status)
}
