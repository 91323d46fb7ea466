package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Image string `json:"image"`

	MenuItems []MenuItem `json:"-"`
}
