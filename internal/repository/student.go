package repository

import (
	"strings"

	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"gorm.io/gorm"
)

type StudentRepo interface {
	GetStudentByUserID(userID uint) (student.Student, error)
	CreateStudent(s *student.Student) error
	SaveStudent(s *student.Student) error
	ListStudents(filter student.ListFilter) ([]student.Student, int64, error)
	FindStudentsByIDs(ids []uint) ([]student.Student, error)
	SetActive(ids []uint, active bool) error
	CountActiveByUnit(kind campus.Kind, unitID uint) (int64, error)
	WithTx(tx *gorm.DB) StudentRepo
}

type DBStudentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) *DBStudentRepo {
	return &DBStudentRepo{
		db: db,
	}
}

func (r *DBStudentRepo) withProfile() *gorm.DB {
	return r.db.Preload("User").Preload("Hostel").Preload("Batch").Preload("ClassSection")
}

func (r *DBStudentRepo) GetStudentByUserID(userID uint) (student.Student, error) {
	var s student.Student
	if err := r.withProfile().Where("user_id = ?", userID).First(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *DBStudentRepo) CreateStudent(s *student.Student) error {
	return r.db.Omit("User", "Hostel", "Batch", "ClassSection").Create(s).Error
}

func (r *DBStudentRepo) SaveStudent(s *student.Student) error {
	return r.db.Omit("User", "Hostel", "Batch", "ClassSection").Save(s).Error
}

func (r *DBStudentRepo) ListStudents(filter student.ListFilter) ([]student.Student, int64, error) {
	page, limit := pageBounds(filter.Page, filter.Limit)

	query := r.db.Model(&student.Student{})
	if filter.HostelID != nil {
		query = query.Where("hostel_id = ?", *filter.HostelID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where(
			"LOWER(roll_no) LIKE ? OR user_id IN (?)",
			like,
			r.db.Table("users").Select("id").Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []student.Student
	err := query.Preload("User").Preload("Hostel").Preload("Batch").Preload("ClassSection").
		Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&students).Error
	return students, total, err
}

func (r *DBStudentRepo) FindStudentsByIDs(ids []uint) ([]student.Student, error) {
	var students []student.Student
	if len(ids) == 0 {
		return students, nil
	}
	err := r.db.Preload("User").Where("id IN ?", ids).Order("id ASC").Find(&students).Error
	return students, err
}

func (r *DBStudentRepo) SetActive(ids []uint, active bool) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&student.Student{}).Where("id IN ?", ids).Update("active", active).Error
}

func (r *DBStudentRepo) CountActiveByUnit(kind campus.Kind, unitID uint) (int64, error) {
	var n int64
	err := r.db.Model(&student.Student{}).
		Where(kind.StudentColumn()+" = ? AND active = ?", unitID, true).
		Count(&n).Error
	return n, err
}

func (r *DBStudentRepo) WithTx(tx *gorm.DB) StudentRepo {
	if tx == nil {
		return r
	}
	return &DBStudentRepo{
		db: tx,
	}
}

func pageBounds(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
