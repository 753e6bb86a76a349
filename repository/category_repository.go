package repository

import (
	"github.com/Fer-Urbina/LittleLemon/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) Get(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CountMenuItems tells whether the category is still referenced.
func (r *CategoryRepository) CountMenuItems(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", categoryID).
		Count(&cnt).Error
	return cnt, err
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
