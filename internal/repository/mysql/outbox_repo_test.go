package mysql

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxPendingLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := &OutboxRepository{DB: db}

	require.NoError(t, db.Create(NewAudit("grant_admin", 1, 2)).Error)
	require.NoError(t, db.Create(NewAudit("delete_user", 1, 3)).Error)

	pending, err := repo.ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "grant_admin", pending[0].EventType)

	require.NoError(t, repo.MarkSent(context.Background(), pending[0].ID))
	require.NoError(t, repo.MarkFailed(context.Background(), pending[1].ID))

	pending, err = repo.ListPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestNewAuditPayload(t *testing.T) {
	audit := NewAudit("revoke_admin", 5, 6)
	assert.Equal(t, "revoke_admin", audit.EventType)
	assert.EqualValues(t, 5, audit.ActorID)
	assert.EqualValues(t, 6, audit.SubjectID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(audit.Payload), &payload))
	assert.EqualValues(t, 5, payload["actor"])
	assert.EqualValues(t, 6, payload["subject"])
	assert.Contains(t, payload, "event_time")
}
