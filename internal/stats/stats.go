// Package stats derives attendance figures from already-fetched record
// lists. Nothing here touches the store; every result is rebuilt from its
// inputs on each call.
package stats

import (
	"strconv"

	"classtrack/internal/attendance"
	"classtrack/internal/student"
)

type Summary struct {
	Total   int    `json:"total"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Percent string `json:"percent"`
}

type RollCallEntry struct {
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	RollNumber int    `json:"rollNumber"`
	Status     string `json:"status"`
}

type RollCall struct {
	Date    string          `json:"date"`
	Entries []RollCallEntry `json:"entries"`
	Summary Summary         `json:"summary"`
}

// Percent formats present/total as a percentage with one decimal place.
// An empty list yields "0.0" rather than dividing by zero.
func Percent(present, total int) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(present)/float64(total)*100, 'f', 1, 64)
}

// Summarize counts Present/Absent over a record list.
func Summarize(records []attendance.RecordResponse) Summary {
	total := len(records)
	present := 0
	for _, rec := range records {
		if rec.Status == string(attendance.StatusPresent) {
			present++
		}
	}
	return Summary{
		Total:   total,
		Present: present,
		Absent:  total - present,
		Percent: Percent(present, total),
	}
}

// BuildRollCall joins one day's records onto the roster. Students with no
// record for the day default to Absent, and the day summary is computed over
// the roster, not the record list.
func BuildRollCall(date string, roster []student.StudentResponse, records []attendance.RecordResponse) RollCall {
	byStudent := make(map[string]string, len(records))
	for _, rec := range records {
		if rec.StudentID == "" {
			continue
		}
		status := string(attendance.StatusAbsent)
		if rec.Status == string(attendance.StatusPresent) {
			status = string(attendance.StatusPresent)
		}
		byStudent[rec.StudentID] = status
	}

	entries := make([]RollCallEntry, len(roster))
	present := 0
	for i, st := range roster {
		status, ok := byStudent[st.ID]
		if !ok {
			status = string(attendance.StatusAbsent)
		}
		if status == string(attendance.StatusPresent) {
			present++
		}
		entries[i] = RollCallEntry{
			StudentID:  st.ID,
			Name:       st.Name,
			RollNumber: st.RollNumber,
			Status:     status,
		}
	}

	total := len(roster)
	return RollCall{
		Date:    date,
		Entries: entries,
		Summary: Summary{
			Total:   total,
			Present: present,
			Absent:  total - present,
			Percent: Percent(present, total),
		},
	}
}
