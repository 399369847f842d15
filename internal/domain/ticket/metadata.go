package ticket

import (
	"time"

	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
)

const MetadataVersion = 1

type Source string

const (
	SourceStudent    Source = "student"
	SourceAdmin      Source = "admin"
	SourceCommittee  Source = "committee"
	SourceBulkAction Source = "bulk_action"
)

type Visibility string

const (
	VisibilityStudent        Visibility = "student_visible"
	VisibilityInternal       Visibility = "internal_note"
	VisibilitySuperAdminNote Visibility = "super_admin_note"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityStudent, VisibilityInternal, VisibilitySuperAdminNote:
		return true
	}
	return false
}

// Comment is one entry of the append-only thread.
type Comment struct {
	Text       string     `json:"text"`
	AuthorID   uint       `json:"author_id"`
	AuthorRole user.Role  `json:"author_role"`
	At         time.Time  `json:"at"`
	Source     Source     `json:"source"`
	Visibility Visibility `json:"visibility"`
}

type TATAction string

const (
	TATSet    TATAction = "set"
	TATExtend TATAction = "extend"
)

type TATEntry struct {
	Action TATAction  `json:"action"`
	By     uint       `json:"by"`
	At     time.Time  `json:"at"`
	From   *time.Time `json:"from,omitempty"`
	To     time.Time  `json:"to"`
	Reason string     `json:"reason,omitempty"`
}

type TAT struct {
	TargetAt *time.Time `json:"target_at,omitempty"`
	History  []TATEntry `json:"history"`
}

type Rating struct {
	Value    int       `json:"value"`
	Feedback string    `json:"feedback,omitempty"`
	At       time.Time `json:"at"`
}

// Metadata is the versioned document stored on each ticket. Documents written
// before a key existed decode with that key zeroed; Normalize fills the rest.
type Metadata struct {
	Version        int                   `json:"version"`
	Answers        map[string]any        `json:"answers"`
	Images         []string              `json:"images"`
	Profile        student.StoredProfile `json:"profile"`
	TAT            TAT                   `json:"tat"`
	Comments       []Comment             `json:"comments"`
	Rating         *Rating               `json:"rating,omitempty"`
	RatingRequired bool                  `json:"rating_required"`
	LastActivityAt *time.Time            `json:"last_activity_at,omitempty"`
}

func (m *Metadata) Normalize() {
	if m.Version == 0 {
		m.Version = MetadataVersion
	}
	if m.Answers == nil {
		m.Answers = map[string]any{}
	}
	if m.Images == nil {
		m.Images = []string{}
	}
	if m.Comments == nil {
		m.Comments = []Comment{}
	}
	if m.TAT.History == nil {
		m.TAT.History = []TATEntry{}
	}
}

func (m *Metadata) AddComment(c Comment) {
	m.Comments = append(m.Comments, c)
	at := c.At
	m.LastActivityAt = &at
}

// VisibleComments filters the thread for a reader with the given role.
func (m Metadata) VisibleComments(role user.Role) []Comment {
	out := make([]Comment, 0, len(m.Comments))
	for _, c := range m.Comments {
		switch c.Visibility {
		case VisibilityInternal:
			if role == user.RoleStudent {
				continue
			}
		case VisibilitySuperAdminNote:
			if role != user.RoleSuperAdmin {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
