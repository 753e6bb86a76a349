package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title        string          `gorm:"not null" json:"title"`
	Price        decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`
	Inventory    uint            `gorm:"not null;default:0" json:"inventory"`
	ItemOfTheDay bool            `gorm:"not null;default:false" json:"itemOfTheDay"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"category"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
