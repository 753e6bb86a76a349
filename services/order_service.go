package services

import (
	"errors"
	"time"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// A losing concurrent checkout retries against the refreshed cart this many
// times before giving up with ErrCheckoutConflict.
const checkoutAttempts = 3

// OrderService turns carts into orders and answers the per-role order views.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// Checkout converts every cart line of the user into one order. The order,
// its items and the cart cleanup commit together or not at all; when two
// checkouts race over the same cart, only one of them keeps its order.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	for attempt := 1; ; attempt++ {
		order, err := s.checkoutOnce(userID)
		if errors.Is(err, ErrCheckoutConflict) && attempt < checkoutAttempts {
			continue
		}
		return order, err
	}
}

func (s *OrderService) checkoutOnce(userID uint) (*entity.Order, error) {
	var createdID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForUpdate(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order, err := s.placeOrder(tx, userID, lines)
		if err != nil {
			return err
		}
		createdID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(createdID)
}

// placeOrder writes the order plus items from the given cart snapshot and
// consumes exactly those lines. If another checkout already consumed any of
// them, the delete comes up short and the whole transaction is abandoned.
func (s *OrderService) placeOrder(tx *gorm.DB, userID uint, lines []entity.CartItem) (*entity.Order, error) {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	order := entity.Order{
		Code:   uuid.NewString(),
		UserID: userID,
		Status: entity.StatusProcessing,
		Total:  total,
		Date:   time.Now(),
	}
	if err := s.Repo.CreateOrder(tx, &order); err != nil {
		return nil, err
	}

	lineIDs := make([]uint, 0, len(lines))
	for _, l := range lines {
		oi := entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			Price:      l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))),
		}
		if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
			return nil, err
		}
		lineIDs = append(lineIDs, l.ID)
	}

	affected, err := s.CartRepo.DeleteLines(tx, userID, lineIDs)
	if err != nil {
		return nil, err
	}
	if affected != int64(len(lineIDs)) {
		return nil, ErrCheckoutConflict
	}
	return &order, nil
}

// ListForCustomer: managers see everything, everyone else only their own.
func (s *OrderService) ListForCustomer(userID uint, role string) ([]entity.Order, error) {
	if role == entity.RoleManager || role == entity.RoleAdmin {
		return s.Repo.ListAll()
	}
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) ListForDelivery(crewID uint) ([]entity.Order, error) {
	return s.Repo.ListForDeliveryCrew(crewID)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}
