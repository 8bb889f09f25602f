package models

import "time"

// AuthToken is the opaque bearer credential issued at login. A user holds at
// most one token; repeated logins return the existing key.
type AuthToken struct {
	Key       string    `gorm:"type:varchar(64);primarykey" json:"key"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
