package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account identified by email instead of a username.
type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Name         string         `gorm:"type:varchar(255)" json:"name"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	IsStaff      bool           `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser  bool           `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Tags        []Tag        `gorm:"foreignKey:UserID" json:"-"`
	Ingredients []Ingredient `gorm:"foreignKey:UserID" json:"-"`
	Recipes     []Recipe     `gorm:"foreignKey:UserID" json:"-"`
}
