package models

import (
	"time"
)

// Vote is a (post, user) pair; its existence is the up-vote. The
// composite primary key is what enforces one vote per user per post,
// so concurrent duplicate inserts fail at the database rather than
// racing past an application-level check.
type Vote struct {
	PostID    uint64    `gorm:"primarykey" json:"post_id"`
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Post Post `gorm:"foreignKey:PostID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
