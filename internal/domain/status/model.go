package status

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Canonical values seeded on first start. Other values may be added by a
// super-admin; code only relies on the ones below.
const (
	Open            = "OPEN"
	InProgress      = "IN_PROGRESS"
	AwaitingStudent = "AWAITING_STUDENT"
	Escalated       = "ESCALATED"
	Reopened        = "REOPENED"
	Resolved        = "RESOLVED"
	Closed          = "CLOSED"
)

// Status is one row of the ticket lifecycle registry. Value is unique among
// rows that are not soft-deleted.
type Status struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Value           string         `gorm:"size:64;not null;uniqueIndex:idx_status_value,where:deleted_at IS NULL" json:"value"`
	Label           string         `gorm:"size:128;not null" json:"label"`
	Description     string         `gorm:"type:text" json:"description"`
	ProgressPercent int            `gorm:"not null;default:0" json:"progress_percent"`
	BadgeColor      string         `gorm:"size:32" json:"badge_color"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	IsFinal         bool           `gorm:"not null;default:false" json:"is_final"`
	DisplayOrder    int            `gorm:"not null;default:0" json:"display_order"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Status) TableName() string {
	return "ticket_statuses"
}

// Normalize turns user input like " in progress" into IN_PROGRESS.
func Normalize(value string) string {
	v := strings.ToUpper(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, "-", "_")
	return strings.Join(strings.Fields(v), "_")
}

// IsCanonical reports whether the workflow resolves value by name, so the
// row must stay active.
func IsCanonical(value string) bool {
	switch value {
	case Open, InProgress, AwaitingStudent, Escalated, Reopened, Resolved, Closed:
		return true
	}
	return false
}

// StudentCanComment lists the states in which a student may append to the
// comment thread.
func StudentCanComment(value string) bool {
	switch value {
	case Open, InProgress, AwaitingStudent:
		return true
	}
	return false
}
