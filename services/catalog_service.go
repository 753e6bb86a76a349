package services

import (
	"errors"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService covers categories and menu items (read-mostly reference data).
type CatalogService struct {
	CatRepo  *repository.CategoryRepository
	MenuRepo *repository.MenuRepository
	PageSize int
}

func NewCatalogService(cr *repository.CategoryRepository, mr *repository.MenuRepository, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &CatalogService{CatRepo: cr, MenuRepo: mr, PageSize: pageSize}
}

// ----- Categories -----

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.CatRepo.List()
}

func (s *CatalogService) CreateCategory(slug, title string) (*entity.Category, error) {
	if title == "" {
		title = "Default Title"
	}
	c := &entity.Category{Slug: slug, Title: title}
	if err := s.CatRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory is refused while menu items still reference the category.
func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.CatRepo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	cnt, err := s.CatRepo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrCategoryInUse
	}
	return s.CatRepo.Delete(id)
}

// ----- Menu items -----

type MenuItemIn struct {
	Title      string           `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Inventory  *uint            `json:"inventory"`
	CategoryID uint             `json:"categoryId"`
}

func (in *MenuItemIn) validate() error {
	if in.Title == "" {
		return errors.New("title is required")
	}
	if in.Price == nil {
		return errors.New("price is required")
	}
	if in.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if in.Inventory == nil {
		return errors.New("inventory is required")
	}
	if in.CategoryID == 0 {
		return errors.New("categoryId is required")
	}
	return nil
}

func (s *CatalogService) ListMenuItems(f repository.MenuItemFilter) ([]entity.MenuItem, error) {
	if f.PerPage <= 0 {
		f.PerPage = s.PageSize
	}
	return s.MenuRepo.List(f)
}

func (s *CatalogService) ListAllMenuItems() ([]entity.MenuItem, error) {
	return s.MenuRepo.ListAll()
}

func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.MenuRepo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *CatalogService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.CatRepo.Get(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}
	m := &entity.MenuItem{
		Title:      in.Title,
		Price:      *in.Price,
		Inventory:  *in.Inventory,
		CategoryID: in.CategoryID,
	}
	if err := s.MenuRepo.Create(m); err != nil {
		return nil, err
	}
	return s.MenuRepo.Get(m.ID)
}

func (s *CatalogService) UpdateMenuItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	m.Title = in.Title
	m.Price = *in.Price
	m.Inventory = *in.Inventory
	m.CategoryID = in.CategoryID
	if err := s.MenuRepo.Save(m); err != nil {
		return nil, err
	}
	return s.MenuRepo.Get(id)
}

func (s *CatalogService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	return s.MenuRepo.Delete(id)
}

// MarkItemOfTheDay flags a promotional item; missing item is NotFound.
func (s *CatalogService) MarkItemOfTheDay(id uint) error {
	affected, err := s.MenuRepo.SetItemOfTheDay(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
