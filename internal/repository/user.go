package repository

import (
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByExternalID(externalID string) (user.User, error)
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	UpdateRole(id uint, role user.Role) error
	SetActive(ids []uint, active bool) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByExternalID(externalID string) (user.User, error) {
	var u user.User
	if err := r.db.Where("external_id = ?", externalID).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) UpdateRole(id uint, role user.Role) error {
	res := r.db.Model(&user.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBUserRepo) SetActive(ids []uint, active bool) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&user.User{}).Where("id IN ?", ids).Update("active", active).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
