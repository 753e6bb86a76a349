package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// One pending line per (user, menu item); repeat adds increment Quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
