package repository

import (
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"gorm.io/gorm"
)

type StatusRepo interface {
	ListActiveStatuses() ([]status.Status, error)
	ListStatuses() ([]status.Status, error)
	GetStatusByID(id uint) (status.Status, error)
	GetStatusByValue(value string) (status.Status, error)
	CreateStatus(s *status.Status) error
	SaveStatus(s *status.Status) error
	DeleteStatus(id uint) error
	CountTicketsWithStatus(statusID uint) (int64, error)
	WithTx(tx *gorm.DB) StatusRepo
}

type DBStatusRepo struct {
	db *gorm.DB
}

func NewStatusRepo(db *gorm.DB) *DBStatusRepo {
	return &DBStatusRepo{
		db: db,
	}
}

func (r *DBStatusRepo) ListActiveStatuses() ([]status.Status, error) {
	var list []status.Status
	err := r.db.Where("is_active = ?", true).Order("display_order ASC").Order("id ASC").Find(&list).Error
	return list, err
}

func (r *DBStatusRepo) ListStatuses() ([]status.Status, error) {
	var list []status.Status
	err := r.db.Order("display_order ASC").Order("id ASC").Find(&list).Error
	return list, err
}

func (r *DBStatusRepo) GetStatusByID(id uint) (status.Status, error) {
	var s status.Status
	if err := r.db.First(&s, id).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *DBStatusRepo) GetStatusByValue(value string) (status.Status, error) {
	var s status.Status
	if err := r.db.Where("value = ?", value).First(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

// CreateStatus inserts s. IsActive=false is written in a second statement
// because the column default would otherwise win over the zero value.
func (r *DBStatusRepo) CreateStatus(s *status.Status) error {
	if err := r.db.Create(s).Error; err != nil {
		return err
	}
	if !s.IsActive {
		return r.db.Model(s).Update("is_active", false).Error
	}
	return nil
}

func (r *DBStatusRepo) SaveStatus(s *status.Status) error {
	return r.db.Save(s).Error
}

func (r *DBStatusRepo) DeleteStatus(id uint) error {
	return r.db.Delete(&status.Status{}, id).Error
}

func (r *DBStatusRepo) CountTicketsWithStatus(statusID uint) (int64, error) {
	var n int64
	err := r.db.Model(&ticket.Ticket{}).Where("status_id = ?", statusID).Count(&n).Error
	return n, err
}

func (r *DBStatusRepo) WithTx(tx *gorm.DB) StatusRepo {
	if tx == nil {
		return r
	}
	return &DBStatusRepo{
		db: tx,
	}
}
