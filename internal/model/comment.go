package model

import "time"

// Comment belongs to a post. AuthorID is nil exactly when the comment is
// anonymous; an anonymous comment has no owner and nobody can claim it later.
type Comment struct {
	ID            uint64     `gorm:"primaryKey" json:"id"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	AuthorID      *uint64    `gorm:"index" json:"author_id"`
	PostID        uint64     `gorm:"not null;index" json:"post_id"`
	IsAnonymous   bool       `gorm:"not null;default:false" json:"is_anonymous"`
	EditedAt      *time.Time `json:"edited_at"`
	EditedByAdmin bool       `gorm:"not null;default:false" json:"edited_by_admin"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`
}
