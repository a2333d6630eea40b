package service

import (
	"strings"
	"testing"

	"forum/internal/model"
	"forum/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantReplyUsesCommentAndTitle(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	post := seedPost(t, db, alice.ID, "Настройка сервера")
	comment := &model.Comment{Content: "помогите пожалуйста", PostID: post.ID, AuthorID: &alice.ID}
	require.NoError(t, db.Create(comment).Error)
	svc := NewAssistantService()

	reply, err := svc.Reply(comment.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(reply, " 🤖"))
	assert.NotEmpty(t, reply)
}

func TestAssistantReplyMissingComment(t *testing.T) {
	useTestDB(t)
	svc := NewAssistantService()

	_, err := svc.Reply(404)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
