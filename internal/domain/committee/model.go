package committee

import "time"

// Committee owns a set of categories; its members may follow and comment on
// tickets filed under them.
type Committee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null;uniqueIndex" json:"name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Members   []Member  `gorm:"foreignKey:CommitteeID" json:"members,omitempty"`
}

type Member struct {
	CommitteeID uint      `gorm:"primaryKey" json:"committee_id"`
	UserID      uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Member) TableName() string {
	return "committee_members"
}
