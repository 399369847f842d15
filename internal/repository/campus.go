package repository

import (
	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"gorm.io/gorm"
)

type CampusRepo interface {
	ListUnits(kind campus.Kind, includeInactive bool) ([]campus.Unit, error)
	GetUnit(kind campus.Kind, id uint) (campus.Unit, error)
	CreateUnit(u *campus.Unit) error
	SaveUnit(u *campus.Unit) error
	WithTx(tx *gorm.DB) CampusRepo
}

type DBCampusRepo struct {
	db *gorm.DB
}

func NewCampusRepo(db *gorm.DB) *DBCampusRepo {
	return &DBCampusRepo{
		db: db,
	}
}

func (r *DBCampusRepo) ListUnits(kind campus.Kind, includeInactive bool) ([]campus.Unit, error) {
	var units []campus.Unit
	query := r.db.Where("kind = ?", kind)
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&units).Error
	return units, err
}

func (r *DBCampusRepo) GetUnit(kind campus.Kind, id uint) (campus.Unit, error) {
	var u campus.Unit
	if err := r.db.Where("kind = ?", kind).First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBCampusRepo) CreateUnit(u *campus.Unit) error {
	return r.db.Create(u).Error
}

func (r *DBCampusRepo) SaveUnit(u *campus.Unit) error {
	return r.db.Save(u).Error
}

func (r *DBCampusRepo) WithTx(tx *gorm.DB) CampusRepo {
	if tx == nil {
		return r
	}
	return &DBCampusRepo{
		db: tx,
	}
}
