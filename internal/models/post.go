package models

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Published bool      `gorm:"not null" json:"published"`
	OwnerID   uint64    `gorm:"not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Owner User   `gorm:"foreignKey:OwnerID" json:"-"`
	Votes []Vote `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
