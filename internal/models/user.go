package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account holder. PasswordHash is never serialized.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `gorm:"default:''" json:"first_name"`
	LastName     string         `gorm:"default:''" json:"last_name"`
	Email        string         `gorm:"index;default:''" json:"email"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	DateJoined   time.Time      `gorm:"index" json:"date_joined"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "usuarios"
}
