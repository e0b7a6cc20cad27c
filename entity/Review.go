package entity

import (
	"gorm.io/gorm"
)

// Append-only: there is no edit or delete path for reviews.
type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"` // 1-5 stars
	Comment string `json:"comment"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// optional: review may target one menu item within the restaurant
	MenuItemID *uint     `gorm:"index" json:"menuItemId,omitempty"`
	MenuItem   *MenuItem `json:"-"`
}
