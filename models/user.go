package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:enum('admin','cashier');default:'cashier'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
