package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TotalAmount float64 `gorm:"not null" json:"totalAmount"`

	// no transition logic exists for either status yet; orders stay
	// "placed" and payments stay "pending" until payment capture lands
	Status        string `gorm:"not null;default:placed" json:"status"`
	PaymentStatus string `gorm:"not null;default:pending" json:"paymentStatus"`

	Address string `json:"address"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	// preload only for the detail endpoint
	OrderItems []OrderItem `json:"-"`
}
