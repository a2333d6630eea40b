package service

import (
	"context"
	"encoding/json"
	"time"

	"forum/internal/model"
	"forum/internal/pkg"
	"forum/internal/repository/mysql"

	"go.uber.org/zap"
)

// Sender delivers one moderation event to its destination.
type Sender func(ctx context.Context, ob *model.ModerationOutbox) error

// OutboxRelayer drains pending moderation events and hands them to the
// sender. Rows that fail delivery are marked for retry on the next pass.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run drains on a fixed interval until the context is cancelled.
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.DrainOnce(ctx)
		}
	}
}

// DrainOnce processes one batch of pending events.
func (r *OutboxRelayer) DrainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		zap.L().Warn("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			zap.L().Warn("outbox send failed", zap.Uint64("id", ob.ID), zap.Error(err))
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender publishes events keyed by the acted-on entity.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ModerationOutbox) error {
		value, err := json.Marshal(map[string]any{
			"event_type": ob.EventType,
			"actor":      ob.ActorID,
			"subject":    ob.SubjectID,
			"payload":    json.RawMessage(ob.Payload),
		})
		if err != nil {
			return err
		}
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.SubjectID), value)
	}
}

// LogSender is the fallback when Kafka is not configured: events are logged
// and marked sent.
func LogSender(ctx context.Context, ob *model.ModerationOutbox) error {
	zap.L().Info("moderation event",
		zap.String("event_type", ob.EventType),
		zap.Uint64("actor", ob.ActorID),
		zap.Uint64("subject", ob.SubjectID))
	return nil
}
