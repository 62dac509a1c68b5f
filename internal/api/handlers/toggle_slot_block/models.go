package toggle_slot_block

// ToggleRequest HTTP request model
type ToggleRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Time      string `json:"time"`
}

// ToggleResponse HTTP response model
type ToggleResponse struct {
	Blocked bool   `json:"blocked"`
	BlockID string `json:"blockId,omitempty"`
}
