package ticket

import (
	"time"

	"github.com/linskybing/campus-helpdesk/internal/domain/student"
)

// CreateTicketInput is the intake form. Details carries dynamic answers keyed
// by field slug and an optional "profile" object; the flat profile fields are
// accepted from older clients.
type CreateTicketInput struct {
	CategoryID       uint           `json:"category_id" binding:"required" example:"1"`
	SubcategoryID    *uint          `json:"subcategory_id" example:"4"`
	SubSubcategoryID *uint          `json:"sub_subcategory_id"`
	Description      string         `json:"description" binding:"required,max=5000" example:"Fan not working"`
	Location         string         `json:"location" binding:"omitempty,max=255"`
	Details          map[string]any `json:"details"`
	Images           []string       `json:"images" binding:"omitempty,max=10,dive,url"`

	RollNo       string `json:"roll_no"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Hostel       string `json:"hostel"`
	RoomNumber   string `json:"room_number"`
	BatchYear    string `json:"batch_year"`
	ClassSection string `json:"class_section"`
}

// NormalizedTicketPayload is the merged result of form input and the stored
// profile, ready for validation and persistence.
type NormalizedTicketPayload struct {
	CategoryID       uint
	SubcategoryID    *uint
	SubSubcategoryID *uint
	Description      string
	Location         string
	Profile          student.StoredProfile
	Answers          map[string]any
	Images           []string
}

type AssignInput struct {
	StaffClerkID *string `json:"staffClerkId" example:"user_2staff"`
}

type CommentInput struct {
	Text       string     `json:"text" binding:"required,max=5000" example:"Electrician visited, issue persists"`
	Visibility Visibility `json:"visibility" binding:"omitempty,oneof=student_visible internal_note super_admin_note"`
}

type StatusInput struct {
	Status  string `json:"status" binding:"required" example:"IN_PROGRESS"`
	Comment string `json:"comment" binding:"omitempty,max=5000"`
}

type EscalateInput struct {
	Reason string `json:"reason" binding:"required,max=2000" example:"No response for 3 days"`
}

// TATInput sets or extends the target. Exactly one of Hours and Date is used;
// a date target falls at the end of that day.
type TATInput struct {
	Hours  *int       `json:"hours" binding:"omitempty,min=1,max=8760"`
	Date   *time.Time `json:"date"`
	Reason string     `json:"reason" binding:"omitempty,max=1000"`
}

type RateInput struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Feedback string `json:"feedback" binding:"omitempty,max=2000"`
}

type BulkCloseInput struct {
	IDs     []uint `json:"ids" binding:"required,min=1"`
	Comment string `json:"comment" binding:"omitempty,max=5000"`
	Status  string `json:"status" example:"RESOLVED"`
}

// BulkCloseResult reports each id once: closed, missing, or failed.
type BulkCloseResult struct {
	Closed   []uint          `json:"closed"`
	NotFound []uint          `json:"not_found"`
	Errors   map[uint]string `json:"errors"`
}

type ListFilter struct {
	Status     string `form:"status"`
	CategoryID *uint  `form:"category_id"`
	AssigneeID *uint  `form:"assignee_id"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`

	UserID      *uint  `form:"-"`
	CategoryIDs []uint `form:"-"`
	StatusID    *uint  `form:"-"`
}

// View is a ticket as returned to a particular reader.
type View struct {
	Ticket
	Comments []Comment `json:"comments"`
}
