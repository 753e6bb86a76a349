package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusProcessing = "Processing"
	StatusDelivered  = "Delivered"
)

type Order struct {
	gorm.Model
	Code  string          `gorm:"uniqueIndex" json:"code"`
	Total decimal.Decimal `gorm:"type:decimal(6,2)" json:"total"`
	Date  time.Time       `gorm:"index" json:"date"`

	Status string `gorm:"not null;default:Processing" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when customer detail is needed

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
