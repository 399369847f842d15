package status

type CreateStatusInput struct {
	Value           string `json:"value" binding:"required,max=64" example:"ON_HOLD"`
	Label           string `json:"label" binding:"required,max=128" example:"On hold"`
	Description     string `json:"description"`
	ProgressPercent int    `json:"progress_percent" binding:"min=0,max=100" example:"40"`
	BadgeColor      string `json:"badge_color" binding:"omitempty,max=32" example:"amber"`
	IsFinal         bool   `json:"is_final"`
	DisplayOrder    int    `json:"display_order"`
}

type UpdateStatusInput struct {
	Label           *string `json:"label" binding:"omitempty,max=128"`
	Description     *string `json:"description"`
	ProgressPercent *int    `json:"progress_percent" binding:"omitempty,min=0,max=100"`
	BadgeColor      *string `json:"badge_color" binding:"omitempty,max=32"`
	IsActive        *bool   `json:"is_active"`
	IsFinal         *bool   `json:"is_final"`
	DisplayOrder    *int    `json:"display_order"`
}

// DeleteCheck answers whether a status row may be removed or deactivated.
type DeleteCheck struct {
	Allowed             bool   `json:"allowed"`
	BlockingTicketCount int64  `json:"blocking_ticket_count"`
	Reason              string `json:"reason,omitempty"`
}
