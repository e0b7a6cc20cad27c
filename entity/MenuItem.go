package entity

import (
	"gorm.io/gorm"
)

// Price is stored in cents; OrderItems copy it at checkout and never
// read it back, so editing the price here does not touch past orders.
type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Category    string `gorm:"not null" json:"category"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
	IsSpecial   bool   `gorm:"default:false" json:"isSpecial"`
	IsDealOfDay bool   `gorm:"default:false" json:"isDealOfDay"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
