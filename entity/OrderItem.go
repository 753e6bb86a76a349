package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Snapshot of a cart line at checkout; never mutated afterwards.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_item" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the menu title is needed

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
