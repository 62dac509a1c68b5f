package update_trial_status

// UpdateTrialStatusRequest HTTP request model
type UpdateTrialStatusRequest struct {
	Status   string `json:"status"`
	Attended *bool  `json:"attended,omitempty"`
}
