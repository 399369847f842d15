package ticket

import (
	"time"

	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"gorm.io/datatypes"
)

// Ticket is a support request filed by a student. The status column is a
// foreign key into the status registry; the comment thread, TAT audit trail
// and rating live in Metadata.
type Ticket struct {
	ID               uint                         `gorm:"primaryKey" json:"id"`
	UserID           uint                         `gorm:"not null;index" json:"user_id"`
	CategoryID       uint                         `gorm:"not null;index" json:"category_id"`
	SubcategoryID    *uint                        `gorm:"index" json:"subcategory_id"`
	SubSubcategoryID *uint                        `json:"sub_subcategory_id"`
	Description      string                       `gorm:"type:text" json:"description"`
	Location         string                       `gorm:"size:255" json:"location"`
	StatusID         uint                         `gorm:"not null;index" json:"status_id"`
	Status           status.Status                `gorm:"foreignKey:StatusID" json:"status"`
	AssigneeID       *uint                        `gorm:"index" json:"assignee_id"`
	EscalationLevel  int                          `gorm:"not null;default:0" json:"escalation_level"`
	Metadata         datatypes.JSONType[Metadata] `json:"metadata"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

// Meta returns the metadata document with defaults filled in.
func (t *Ticket) Meta() Metadata {
	m := t.Metadata.Data()
	m.Normalize()
	return m
}

func (t *Ticket) SetMeta(m Metadata) {
	m.Normalize()
	t.Metadata = datatypes.NewJSONType(m)
}

func (t *Ticket) IsFinal() bool {
	return t.Status.IsFinal
}
