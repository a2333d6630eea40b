package service

import (
	"context"
	"errors"
	"testing"

	"forum/internal/model"
	"forum/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxDrainMarksSent(t *testing.T) {
	db := useTestDB(t)
	require.NoError(t, db.Create(mysql.NewAudit("delete_post", 1, 2)).Error)
	require.NoError(t, db.Create(mysql.NewAudit("grant_admin", 1, 3)).Error)

	var sent []string
	relayer := NewOutboxRelayer(func(ctx context.Context, ob *model.ModerationOutbox) error {
		sent = append(sent, ob.EventType)
		return nil
	})
	relayer.DrainOnce(context.Background())

	assert.Equal(t, []string{"delete_post", "grant_admin"}, sent)

	var pending int64
	require.NoError(t, db.Model(&model.ModerationOutbox{}).Where("status = 0").Count(&pending).Error)
	assert.EqualValues(t, 0, pending)
}

func TestOutboxDrainMarksFailedForRetry(t *testing.T) {
	db := useTestDB(t)
	require.NoError(t, db.Create(mysql.NewAudit("delete_user", 1, 2)).Error)

	relayer := NewOutboxRelayer(func(ctx context.Context, ob *model.ModerationOutbox) error {
		return errors.New("broker down")
	})
	relayer.DrainOnce(context.Background())

	var row model.ModerationOutbox
	require.NoError(t, db.First(&row).Error)
	assert.EqualValues(t, 2, row.Status)
	assert.EqualValues(t, 1, row.Retry)
}

func TestLogSenderAlwaysSucceeds(t *testing.T) {
	err := LogSender(context.Background(), mysql.NewAudit("edit_comment", 1, 2))
	assert.NoError(t, err)
}
