package entity

import (
	"time"
)

// One row per (user, menu item); adding the same item again bumps Qty.
// A cart may span several restaurants — checkout splits it per restaurant.
//
// Cart rows are transient and hard-deleted: no DeletedAt, or removed rows
// would keep occupying the (user, item) unique index.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Qty int `gorm:"not null;default:1" json:"qty"`
}
