package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string      `gorm:"uniqueIndex;size:50;not null" json:"orderNumber"`
	Status      OrderStatus `gorm:"size:20;not null;default:pending" json:"status"`
	Total       int64       `gorm:"not null" json:"total"`
	Notes       string      `json:"notes"`

	CustomerID uint `gorm:"index;not null" json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// preload only on the detail endpoint
	OrderItems []OrderItem `json:"-"`
}
