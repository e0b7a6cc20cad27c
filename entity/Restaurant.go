package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	CuisineType string `gorm:"not null" json:"cuisineType"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	OwnerID uint `gorm:"index" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
}
