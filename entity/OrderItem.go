package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"`

	// unit price captured at order time; deliberately decoupled from
	// MenuItem.Price so old orders survive menu price changes
	Price float64 `gorm:"not null" json:"price"`

	Customizations string `json:"customizations"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
