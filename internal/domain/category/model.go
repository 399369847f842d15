package category

import (
	"time"

	"gorm.io/datatypes"
)

// Category is the top of the intake hierarchy. Rows are soft-deleted through
// Active=false so historic tickets keep resolving their category.
type Category struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:128;not null" json:"name"`
	Slug              string    `gorm:"size:128;not null;uniqueIndex" json:"slug"`
	Description       string    `gorm:"type:text" json:"description"`
	Icon              string    `gorm:"size:64" json:"icon"`
	Color             string    `gorm:"size:32" json:"color"`
	SLAHours          int       `gorm:"not null;default:48" json:"sla_hours"`
	DisplayOrder      int       `gorm:"not null;default:0" json:"display_order"`
	Active            bool      `gorm:"not null;default:true;index" json:"active"`
	ParentID          *uint     `gorm:"index" json:"parent_id"`
	DefaultAssigneeID *uint     `json:"default_assignee_id"`
	CommitteeID       *uint     `gorm:"index" json:"committee_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Subcategory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CategoryID      uint      `gorm:"not null;uniqueIndex:idx_subcategory_slug" json:"category_id"`
	Name            string    `gorm:"size:128;not null" json:"name"`
	Slug            string    `gorm:"size:128;not null;uniqueIndex:idx_subcategory_slug" json:"slug"`
	DisplayOrder    int       `gorm:"not null;default:0" json:"display_order"`
	Active          bool      `gorm:"not null;default:true;index" json:"active"`
	AssignedStaffID *uint     `json:"assigned_staff_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SubSubcategory is the optional third tier under a subcategory.
type SubSubcategory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SubcategoryID uint      `gorm:"not null;uniqueIndex:idx_sub_subcategory_slug" json:"subcategory_id"`
	Name          string    `gorm:"size:128;not null" json:"name"`
	Slug          string    `gorm:"size:128;not null;uniqueIndex:idx_sub_subcategory_slug" json:"slug"`
	DisplayOrder  int       `gorm:"not null;default:0" json:"display_order"`
	Active        bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (SubSubcategory) TableName() string {
	return "sub_subcategories"
}

// ValidationRules is stored as JSON on the field row. Which keys apply
// depends on the field type.
type ValidationRules struct {
	MinLength    *int     `json:"min_length,omitempty"`
	MaxLength    *int     `json:"max_length,omitempty"`
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	Pattern      string   `json:"pattern,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

type Field struct {
	ID            uint                                `gorm:"primaryKey" json:"id"`
	SubcategoryID uint                                `gorm:"not null;index;uniqueIndex:idx_field_slug" json:"subcategory_id"`
	Name          string                              `gorm:"size:128;not null" json:"name"`
	Slug          string                              `gorm:"size:128;not null;uniqueIndex:idx_field_slug" json:"slug"`
	FieldType     FieldType                           `gorm:"size:32;not null" json:"field_type"`
	Required      bool                                `gorm:"not null;default:false" json:"required"`
	Placeholder   string                              `gorm:"size:255" json:"placeholder"`
	HelpText      string                              `gorm:"type:text" json:"help_text"`
	Rules         datatypes.JSONType[ValidationRules] `json:"validation_rules"`
	DisplayOrder  int                                 `gorm:"not null;default:0" json:"display_order"`
	Active        bool                                `gorm:"not null;default:true;index" json:"active"`
	CreatedAt     time.Time                           `json:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at"`
}

func (Field) TableName() string {
	return "category_fields"
}

type FieldOption struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FieldID      uint      `gorm:"not null;index" json:"field_id"`
	Label        string    `gorm:"size:128;not null" json:"label"`
	Value        string    `gorm:"size:128;not null" json:"value"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (FieldOption) TableName() string {
	return "field_options"
}
