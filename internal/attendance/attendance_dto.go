package attendance

// MarkRequest creates a record dated now, without upsert semantics.
type MarkRequest struct {
	StudentName string `json:"studentName"`
	RollNumber  string `json:"rollNumber"`
	Status      string `json:"status" binding:"required,oneof=Present Absent"`
}

// UpsertRequest applies find-or-create-by-day semantics for one student.
// StudentName is a pointer so an absent field leaves the stored value
// untouched on update.
type UpsertRequest struct {
	StudentID   string  `json:"studentId" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Status      string  `json:"status" binding:"required,oneof=Present Absent"`
	RollNumber  string  `json:"rollNumber"`
	StudentName *string `json:"studentName"`
}

type BatchEntry struct {
	StudentID string `json:"studentId"`
	Status    string `json:"status"`
}

type BatchRequest struct {
	Date    string       `json:"date" binding:"required"`
	Records []BatchEntry `json:"records" binding:"required,min=1"`
}

type RecordResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId,omitempty"`
	StudentName string `json:"studentName,omitempty"`
	RollNumber  string `json:"rollNumber,omitempty"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

type BatchResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
