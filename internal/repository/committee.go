package repository

import (
	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/domain/committee"
	"gorm.io/gorm"
)

type CommitteeRepo interface {
	CreateCommittee(c *committee.Committee) error
	AddMember(committeeID, userID uint) error
	CategoryIDsForMember(userID uint) ([]uint, error)
	WithTx(tx *gorm.DB) CommitteeRepo
}

type DBCommitteeRepo struct {
	db *gorm.DB
}

func NewCommitteeRepo(db *gorm.DB) *DBCommitteeRepo {
	return &DBCommitteeRepo{
		db: db,
	}
}

func (r *DBCommitteeRepo) CreateCommittee(c *committee.Committee) error {
	return r.db.Omit("Members").Create(c).Error
}

func (r *DBCommitteeRepo) AddMember(committeeID, userID uint) error {
	return r.db.Create(&committee.Member{CommitteeID: committeeID, UserID: userID}).Error
}

// CategoryIDsForMember lists categories owned by active committees the user
// belongs to.
func (r *DBCommitteeRepo) CategoryIDsForMember(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&category.Category{}).
		Where("committee_id IN (?)",
			r.db.Table("committee_members cm").
				Select("cm.committee_id").
				Joins("JOIN committees c ON c.id = cm.committee_id").
				Where("cm.user_id = ? AND c.active = ?", userID, true),
		).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DBCommitteeRepo) WithTx(tx *gorm.DB) CommitteeRepo {
	if tx == nil {
		return r
	}
	return &DBCommitteeRepo{
		db: tx,
	}
}
