package create_student

// CreateStudentRequest HTTP request model
type CreateStudentRequest struct {
	Name           string  `json:"name"`
	PartnershipTag *string `json:"partnershipTag,omitempty"`
	Note           *string `json:"note,omitempty"`
	Waitlisted     bool    `json:"waitlisted"`
}
