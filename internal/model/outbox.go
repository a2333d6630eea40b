package model

import "time"

// ModerationOutbox records admin actions (role changes, admin deletions and
// edits). Rows are written in the same transaction as the action itself and
// relayed to Kafka afterwards.
type ModerationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // grant_admin / revoke_admin / grant_moderator / revoke_moderator / delete_user / delete_post / delete_comment / edit_post / edit_comment
	ActorID   uint64 `gorm:"not null"`
	SubjectID uint64 `gorm:"not null"`
	Payload   string `gorm:"type:text;not null"`
	Status    int8   `gorm:"not null;default:0"` // 0=pending, 1=sent, 2=failed
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ModerationOutbox) TableName() string { return "moderation_outbox" }
