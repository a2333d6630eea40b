package model

import "time"

// Like is a toggle pair: the unique (user_id, post_id) index guarantees at
// most one row per pair even if two toggle requests race.
type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uk_user_post" json:"user_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:uk_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
