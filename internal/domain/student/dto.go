package student

type OnboardInput struct {
	FullName       string `json:"full_name" binding:"required,min=2,max=255" example:"Asha Rao"`
	Email          string `json:"email" binding:"omitempty,email" example:"asha@college.edu"`
	Phone          string `json:"phone" binding:"omitempty,max=32" example:"9876543210"`
	RollNo         string `json:"roll_no" binding:"required,max=64" example:"21CS045"`
	RoomNumber     string `json:"room_number" binding:"omitempty,max=32" example:"B-214"`
	HostelID       *uint  `json:"hostel_id" example:"1"`
	BatchID        *uint  `json:"batch_id" example:"3"`
	ClassSectionID *uint  `json:"class_section_id" example:"7"`
}

type UpdateProfileInput struct {
	FullName       *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Phone          *string `json:"phone" binding:"omitempty,max=32"`
	RoomNumber     *string `json:"room_number" binding:"omitempty,max=32"`
	HostelID       *uint   `json:"hostel_id"`
	BatchID        *uint   `json:"batch_id"`
	ClassSectionID *uint   `json:"class_section_id"`
}

type DeactivateInput struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// DeactivateResult reports each id in exactly one bucket.
type DeactivateResult struct {
	Deactivated     []uint `json:"deactivated"`
	AlreadyInactive []uint `json:"already_inactive"`
	NotFound        []uint `json:"not_found"`
}

type ListFilter struct {
	HostelID *uint  `form:"hostel_id"`
	Active   *bool  `form:"active"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
