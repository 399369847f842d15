package campus

import "time"

type Kind string

const (
	KindHostel       Kind = "hostel"
	KindBatch        Kind = "batch"
	KindClassSection Kind = "class_section"
)

func (k Kind) Valid() bool {
	switch k {
	case KindHostel, KindBatch, KindClassSection:
		return true
	}
	return false
}

// StudentColumn is the students column that references a unit of this kind.
func (k Kind) StudentColumn() string {
	switch k {
	case KindHostel:
		return "hostel_id"
	case KindBatch:
		return "batch_id"
	case KindClassSection:
		return "class_section_id"
	}
	return ""
}

// Unit is a hostel, batch or class section. Units are never deleted; a unit
// with assigned students cannot be deactivated either.
type Unit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Kind      Kind      `gorm:"size:32;not null;uniqueIndex:idx_campus_unit_kind_name" json:"kind"`
	Name      string    `gorm:"size:128;not null;uniqueIndex:idx_campus_unit_kind_name" json:"name"`
	Code      string    `gorm:"size:32" json:"code"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Unit) TableName() string {
	return "campus_units"
}
