package entity

import (
	"gorm.io/gorm"
)

// UnitPrice is the menu price frozen at checkout, in cents.
type OrderItem struct {
	gorm.Model
	Qty       int   `gorm:"not null" json:"qty"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
