package repository

import (
	"strings"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// Only these fields may appear in the ordering query param.
var orderableFields = map[string]string{
	"price":     "menu_items.price",
	"inventory": "menu_items.inventory",
}

type MenuItemFilter struct {
	CategoryTitle string
	ToPrice       *decimal.Decimal
	Search        string
	Ordering      string
	Page          int
	PerPage       int
}

// List applies the optional filters and page-number pagination. A page past
// the end yields an empty slice, not an error.
func (r *MenuRepository) List(f MenuItemFilter) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{}).Preload("Category")

	if f.CategoryTitle != "" {
		q = q.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.title = ?", f.CategoryTitle)
	}
	if f.ToPrice != nil {
		q = q.Where("menu_items.price <= ?", f.ToPrice)
	}
	if f.Search != "" {
		q = q.Where("LOWER(menu_items.title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	for _, field := range strings.Split(f.Ordering, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		col, ok := orderableFields[field]
		if !ok {
			continue // silently drop fields outside the allow-list
		}
		q = q.Order(col + " " + dir)
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = 10
	}
	offset := (f.Page - 1) * f.PerPage

	var items []entity.MenuItem
	err := q.Limit(f.PerPage).Offset(offset).Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Category").Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// Save skips association writes: with Category preloaded, a full save would
// copy the old Category.ID back over a changed CategoryID.
func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Omit(clause.Associations).Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) SetItemOfTheDay(id uint) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("item_of_the_day", true)
	return res.RowsAffected, res.Error
}
