package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug  string `json:"slug"`
	Title string `gorm:"not null;default:'Default Title'" json:"title"`

	MenuItems []MenuItem `json:"-"`
}
