package Models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password []byte `json:"-"`

	// Permission levels: 1 = staff, 2 = manager, 3 = admin
	Permission int  `json:"permission"`
	IsActive   bool `json:"is_active" gorm:"default:true"`
}
