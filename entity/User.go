package entity

import (
	"gorm.io/gorm"
)

// Roles live on the user row itself, not in a separate group table.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleDelivery = "delivery"
	RoleCustomer = "customer"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// Relations, preloaded only when needed.
	CartItems       []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders          []Order    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OrdersToDeliver []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
}
