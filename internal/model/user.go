package model

import "time"

type User struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password    string    `gorm:"size:200;not null" json:"-"`
	IsAdmin     bool      `gorm:"not null;default:false" json:"is_admin"`
	IsModerator bool      `gorm:"not null;default:false" json:"is_moderator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
