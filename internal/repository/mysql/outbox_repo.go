package mysql

import (
	"context"
	"encoding/json"
	"time"

	"forum/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// NewAudit builds a pending moderation event. Callers hand it to a repository
// mutation so the row commits in the same transaction as the action.
func NewAudit(event string, actorID, subjectID uint64) *model.ModerationOutbox {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"subject":    subjectID,
	})
	return &model.ModerationOutbox{
		EventType: event,
		ActorID:   actorID,
		SubjectID: subjectID,
		Payload:   string(payload),
		Status:    0,
	}
}

// ListPending returns the oldest unsent events, up to batchSize.
func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.ModerationOutbox, error) {
	var list []model.ModerationOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ModerationOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ModerationOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}
