package category

type CreateCategoryInput struct {
	Name              string `json:"name" binding:"required,max=128" example:"Hostel"`
	Slug              string `json:"slug" binding:"omitempty,max=128" example:"hostel"`
	Description       string `json:"description"`
	Icon              string `json:"icon" binding:"omitempty,max=64"`
	Color             string `json:"color" binding:"omitempty,max=32"`
	SLAHours          *int   `json:"sla_hours" binding:"omitempty,min=1"`
	DisplayOrder      int    `json:"display_order"`
	ParentID          *uint  `json:"parent_id"`
	DefaultAssigneeID *uint  `json:"default_assignee_id"`
	CommitteeID       *uint  `json:"committee_id"`
}

type UpdateCategoryInput struct {
	Name              *string `json:"name" binding:"omitempty,max=128"`
	Slug              *string `json:"slug" binding:"omitempty,max=128"`
	Description       *string `json:"description"`
	Icon              *string `json:"icon" binding:"omitempty,max=64"`
	Color             *string `json:"color" binding:"omitempty,max=32"`
	SLAHours          *int    `json:"sla_hours" binding:"omitempty,min=1"`
	DisplayOrder      *int    `json:"display_order"`
	Active            *bool   `json:"active"`
	DefaultAssigneeID *uint   `json:"default_assignee_id"`
	CommitteeID       *uint   `json:"committee_id"`
}

type CreateSubcategoryInput struct {
	CategoryID      uint   `json:"category_id" binding:"required" example:"1"`
	Name            string `json:"name" binding:"required,max=128" example:"Maintenance"`
	Slug            string `json:"slug" binding:"omitempty,max=128" example:"maintenance"`
	DisplayOrder    int    `json:"display_order"`
	AssignedStaffID *uint  `json:"assigned_staff_id"`
}

type UpdateSubcategoryInput struct {
	Name            *string `json:"name" binding:"omitempty,max=128"`
	Slug            *string `json:"slug" binding:"omitempty,max=128"`
	DisplayOrder    *int    `json:"display_order"`
	Active          *bool   `json:"active"`
	AssignedStaffID *uint   `json:"assigned_staff_id"`
}

type CreateSubSubcategoryInput struct {
	SubcategoryID uint   `json:"subcategory_id" binding:"required"`
	Name          string `json:"name" binding:"required,max=128"`
	Slug          string `json:"slug" binding:"omitempty,max=128"`
	DisplayOrder  int    `json:"display_order"`
}

type UpdateSubSubcategoryInput struct {
	Name         *string `json:"name" binding:"omitempty,max=128"`
	Slug         *string `json:"slug" binding:"omitempty,max=128"`
	DisplayOrder *int    `json:"display_order"`
	Active       *bool   `json:"active"`
}

type CreateFieldInput struct {
	SubcategoryID uint            `json:"subcategory_id" binding:"required" example:"4"`
	Name          string          `json:"name" binding:"required,max=128" example:"Issue Type"`
	Slug          string          `json:"slug" binding:"omitempty,max=128" example:"issueType"`
	FieldType     FieldType       `json:"field_type" binding:"required,oneof=text textarea select date number boolean upload" example:"select"`
	Required      bool            `json:"required"`
	Placeholder   string          `json:"placeholder" binding:"omitempty,max=255"`
	HelpText      string          `json:"help_text"`
	Rules         ValidationRules `json:"validation_rules"`
	DisplayOrder  int             `json:"display_order"`
}

type UpdateFieldInput struct {
	Name         *string          `json:"name" binding:"omitempty,max=128"`
	Required     *bool            `json:"required"`
	Placeholder  *string          `json:"placeholder" binding:"omitempty,max=255"`
	HelpText     *string          `json:"help_text"`
	Rules        *ValidationRules `json:"validation_rules"`
	DisplayOrder *int             `json:"display_order"`
	Active       *bool            `json:"active"`
}

type CreateOptionInput struct {
	FieldID      uint   `json:"field_id" binding:"required" example:"9"`
	Label        string `json:"label" binding:"required,max=128" example:"Electrical"`
	Value        string `json:"value" binding:"omitempty,max=128" example:"Electrical"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateOptionInput struct {
	Label        *string `json:"label" binding:"omitempty,max=128"`
	Value        *string `json:"value" binding:"omitempty,max=128"`
	DisplayOrder *int    `json:"display_order"`
	Active       *bool   `json:"active"`
}

// Summary is the row shape of GET /categories/list.
type Summary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	SLAHours    int    `json:"sla_hours"`
}
