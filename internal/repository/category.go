package repository

import (
	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	ListActiveCategories() ([]category.Category, error)
	GetCategory(id uint) (category.Category, error)
	CreateCategory(c *category.Category) error
	SaveCategory(c *category.Category) error

	ActiveSubcategories(categoryIDs []uint) ([]category.Subcategory, error)
	GetSubcategory(id uint) (category.Subcategory, error)
	CreateSubcategory(s *category.Subcategory) error
	SaveSubcategory(s *category.Subcategory) error

	ActiveSubSubcategories(subcategoryIDs []uint) ([]category.SubSubcategory, error)
	GetSubSubcategory(id uint) (category.SubSubcategory, error)
	CreateSubSubcategory(s *category.SubSubcategory) error
	SaveSubSubcategory(s *category.SubSubcategory) error

	ActiveFields(subcategoryIDs []uint) ([]category.Field, error)
	GetField(id uint) (category.Field, error)
	CreateField(f *category.Field) error
	SaveField(f *category.Field) error

	ActiveOptions(fieldIDs []uint) ([]category.FieldOption, error)
	GetOption(id uint) (category.FieldOption, error)
	CreateOption(o *category.FieldOption) error
	SaveOption(o *category.FieldOption) error

	WithTx(tx *gorm.DB) CategoryRepo
}

type DBCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *DBCategoryRepo {
	return &DBCategoryRepo{
		db: db,
	}
}

func (r *DBCategoryRepo) ListActiveCategories() ([]category.Category, error) {
	var list []category.Category
	err := r.db.Where("active = ?", true).
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *DBCategoryRepo) GetCategory(id uint) (category.Category, error) {
	var c category.Category
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBCategoryRepo) CreateCategory(c *category.Category) error {
	return r.db.Create(c).Error
}

func (r *DBCategoryRepo) SaveCategory(c *category.Category) error {
	return r.db.Save(c).Error
}

func (r *DBCategoryRepo) ActiveSubcategories(categoryIDs []uint) ([]category.Subcategory, error) {
	var list []category.Subcategory
	if len(categoryIDs) == 0 {
		return list, nil
	}
	err := r.db.Where("category_id IN ? AND active = ?", categoryIDs, true).Find(&list).Error
	return list, err
}

func (r *DBCategoryRepo) GetSubcategory(id uint) (category.Subcategory, error) {
	var s category.Subcategory
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBCategoryRepo) CreateSubcategory(s *category.Subcategory) error {
	return r.db.Create(s).Error
}

func (r *DBCategoryRepo) SaveSubcategory(s *category.Subcategory) error {
	return r.db.Save(s).Error
}

func (r *DBCategoryRepo) ActiveSubSubcategories(subcategoryIDs []uint) ([]category.SubSubcategory, error) {
	var list []category.SubSubcategory
	if len(subcategoryIDs) == 0 {
		return list, nil
	}
	err := r.db.Where("subcategory_id IN ? AND active = ?", subcategoryIDs, true).Find(&list).Error
	return list, err
}

func (r *DBCategoryRepo) GetSubSubcategory(id uint) (category.SubSubcategory, error) {
	var s category.SubSubcategory
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBCategoryRepo) CreateSubSubcategory(s *category.SubSubcategory) error {
	return r.db.Create(s).Error
}

func (r *DBCategoryRepo) SaveSubSubcategory(s *category.SubSubcategory) error {
	return r.db.Save(s).Error
}

func (r *DBCategoryRepo) ActiveFields(subcategoryIDs []uint) ([]category.Field, error) {
	var list []category.Field
	if len(subcategoryIDs) == 0 {
		return list, nil
	}
	err := r.db.Where("subcategory_id IN ? AND active = ?", subcategoryIDs, true).Find(&list).Error
	return list, err
}

func (r *DBCategoryRepo) GetField(id uint) (category.Field, error) {
	var f category.Field
	err := r.db.First(&f, id).Error
	return f, err
}

func (r *DBCategoryRepo) CreateField(f *category.Field) error {
	return r.db.Create(f).Error
}

func (r *DBCategoryRepo) SaveField(f *category.Field) error {
	return r.db.Save(f).Error
}

func (r *DBCategoryRepo) ActiveOptions(fieldIDs []uint) ([]category.FieldOption, error) {
	var list []category.FieldOption
	if len(fieldIDs) == 0 {
		return list, nil
	}
	err := r.db.Where("field_id IN ? AND active = ?", fieldIDs, true).Find(&list).Error
	return list, err
}

func (r *DBCategoryRepo) GetOption(id uint) (category.FieldOption, error) {
	var o category.FieldOption
	err := r.db.First(&o, id).Error
	return o, err
}

func (r *DBCategoryRepo) CreateOption(o *category.FieldOption) error {
	return r.db.Create(o).Error
}

func (r *DBCategoryRepo) SaveOption(o *category.FieldOption) error {
	return r.db.Save(o).Error
}

func (r *DBCategoryRepo) WithTx(tx *gorm.DB) CategoryRepo {
	if tx == nil {
		return r
	}
	return &DBCategoryRepo{
		db: tx,
	}
}
