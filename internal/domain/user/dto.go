package user

type UpdateRoleInput struct {
	Role Role `json:"role" binding:"required,oneof=student admin super_admin committee" example:"admin"`
}

type MeDTO struct {
	ID         uint   `json:"id" example:"12"`
	ExternalID string `json:"external_id" example:"user_2abc"`
	Email      string `json:"email" example:"asha@college.edu"`
	FullName   string `json:"full_name" example:"Asha Rao"`
	Role       Role   `json:"role" example:"student"`
	Profile    any    `json:"profile,omitempty"`
}
