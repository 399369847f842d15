package user

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleCommittee  Role = "committee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleSuperAdmin, RoleCommittee:
		return true
	}
	return false
}

// IsStaff reports whether tickets may be assigned to a user with this role.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User is an account known to the help desk. ExternalID is the subject issued
// by the identity provider; the role column is the only source of truth for
// authorization.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"size:191;not null;uniqueIndex" json:"external_id"`
	Email      string    `gorm:"size:255" json:"email"`
	FullName   string    `gorm:"size:255" json:"full_name"`
	Phone      string    `gorm:"size:32" json:"phone"`
	Role       Role      `gorm:"size:32;not null;default:'student';index" json:"role"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Actor is the authenticated caller of a request after the role gate.
type Actor struct {
	UserID     uint
	ExternalID string
	Role       Role
}

func (a Actor) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}
