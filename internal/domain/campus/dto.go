package campus

type CreateUnitInput struct {
	Name string `json:"name" binding:"required,min=1,max=128" example:"Ganga Hostel"`
	Code string `json:"code" binding:"omitempty,max=32" example:"GH"`
}

type UpdateUnitInput struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=128"`
	Code   *string `json:"code" binding:"omitempty,max=32"`
	Active *bool   `json:"active"`
}
