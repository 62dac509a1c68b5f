package add_enrollment

// AddEnrollmentRequest HTTP request model
type AddEnrollmentRequest struct {
	StudentID string  `json:"studentId"`
	Note      *string `json:"note,omitempty"`
}
