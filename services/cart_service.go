package services

import (
	"errors"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

func (s *CartService) List(userID uint) ([]entity.CartItem, error) {
	return s.CartRepo.ListForUser(userID)
}

// Add merges repeat adds of the same menu item into one line with the summed
// quantity; two rows for the same (user, item) must never exist.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	m, err := s.MenuRepo.Get(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  m.Price,
		Price:      m.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, line)
	})
}

// Clear is idempotent: an already-empty cart still succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
