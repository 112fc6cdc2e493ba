package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations. Deleting a user takes their posts and votes with it.
	Posts []Post `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Votes []Vote `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
