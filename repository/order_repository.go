package repository

import (
	"github.com/Fer-Urbina/LittleLemon/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForDeliveryCrew(crewID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("delivery_crew_id = ?", crewID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) SetDeliveryCrew(orderID, crewID uint) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("delivery_crew_id", crewID).Error
}

// UpdateStatusFromTo only advances when the order is still in the expected
// state, so a delivered order can never move again.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
