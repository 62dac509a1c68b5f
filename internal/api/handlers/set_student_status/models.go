package set_student_status

// SetStatusRequest HTTP request model
// Status пустой, если меняется только признак листа ожидания
type SetStatusRequest struct {
	Status     string `json:"status,omitempty"`
	Waitlisted *bool  `json:"waitlisted,omitempty"`
}
