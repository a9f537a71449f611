package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	// bcrypt hash, never serialized
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:16;not null;default:user" json:"role"`
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
