package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is the central domain record. Tags and ingredients attach through
// join tables; the image field holds a media-root-relative file path.
type Recipe struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	TimeMinutes int            `gorm:"not null" json:"time_minutes"`
	Price       string         `gorm:"type:varchar(16);not null" json:"price"`
	Link        string         `gorm:"type:varchar(255)" json:"link"`
	Image       string         `gorm:"type:varchar(255)" json:"image"`
	UserID      uint64         `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"-"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"-"`
}
