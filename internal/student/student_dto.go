package student

type StudentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RollNumber int    `json:"rollNumber"`
}
