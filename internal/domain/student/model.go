package student

import (
	"strings"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
)

// Student is the profile attached to a user with the student role.
// Deactivation only flips Active; tickets keep their reference.
type Student struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"not null;uniqueIndex" json:"user_id"`
	RollNo         string       `gorm:"size:64;uniqueIndex" json:"roll_no"`
	RoomNumber     string       `gorm:"size:32" json:"room_number"`
	HostelID       *uint        `gorm:"index" json:"hostel_id"`
	BatchID        *uint        `gorm:"index" json:"batch_id"`
	ClassSectionID *uint        `gorm:"index" json:"class_section_id"`
	Active         bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	User           user.User    `gorm:"foreignKey:UserID" json:"user"`
	Hostel         *campus.Unit `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	Batch          *campus.Unit `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
	ClassSection   *campus.Unit `gorm:"foreignKey:ClassSectionID" json:"class_section,omitempty"`
}

// IsComplete reports whether the profile carries what ticket intake needs.
func (s *Student) IsComplete() bool {
	return strings.TrimSpace(s.RollNo) != "" &&
		s.HostelID != nil &&
		strings.TrimSpace(s.RoomNumber) != ""
}

// Profile flattens a student row with its preloaded relations into the
// values the payload builder falls back on.
func (s *Student) Profile() StoredProfile {
	p := StoredProfile{
		RollNo:     s.RollNo,
		FullName:   s.User.FullName,
		Phone:      s.User.Phone,
		Email:      s.User.Email,
		RoomNumber: s.RoomNumber,
	}
	if s.Hostel != nil {
		p.Hostel = s.Hostel.Name
	}
	if s.Batch != nil {
		p.BatchYear = s.Batch.Name
	}
	if s.ClassSection != nil {
		p.ClassSection = s.ClassSection.Name
	}
	return p
}

// StoredProfile is the on-file view of a student used as the last fallback
// during intake.
type StoredProfile struct {
	RollNo       string `json:"roll_no"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Hostel       string `json:"hostel"`
	RoomNumber   string `json:"room_number"`
	BatchYear    string `json:"batch_year"`
	ClassSection string `json:"class_section"`
}
