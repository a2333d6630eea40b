package service

import (
	"context"
	"testing"

	"forum/internal/model"
	"forum/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCreateRequiresLogin(t *testing.T) {
	useTestDB(t)
	svc := NewPostService()

	_, err := svc.Create(nil, "Test", "Body")
	assert.ErrorIs(t, err, pkg.ErrUnauthenticated)
}

func TestPostCreateValidation(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	svc := NewPostService()

	_, err := svc.Create(alice, "", "Body")
	assert.ErrorIs(t, err, pkg.ErrValidation)
	_, err = svc.Create(alice, "Test", "")
	assert.ErrorIs(t, err, pkg.ErrValidation)

	post, err := svc.Create(alice, "Test", "Body")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, post.AuthorID)
}

func TestPostEditOwnerOrAdmin(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	admin := seedUser(t, db, "root", true)
	post := seedPost(t, db, alice.ID, "Test")
	svc := NewPostService()

	err := svc.Edit(context.Background(), bob, post.ID, "x", "y")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	require.NoError(t, svc.Edit(context.Background(), alice, post.ID, "mine", "still mine"))
	require.NoError(t, svc.Edit(context.Background(), admin, post.ID, "moderated", "by admin"))

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, "moderated", got.Title)
}

func TestPostDeleteCascadesThread(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	post := seedPost(t, db, alice.ID, "Test")
	seedComment(t, db, post.ID, &bob.ID)
	require.NoError(t, db.Create(&model.Like{UserID: bob.ID, PostID: post.ID}).Error)
	svc := NewPostService()

	require.NoError(t, svc.Delete(context.Background(), alice, post.ID))

	var n int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
	require.NoError(t, db.Model(&model.Like{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestPostViewDecoratesCountsAndAuthors(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	post := seedPost(t, db, alice.ID, "Test")
	seedComment(t, db, post.ID, &bob.ID)
	seedComment(t, db, post.ID, nil)
	require.NoError(t, db.Create(&model.Like{UserID: bob.ID, PostID: post.ID}).Error)
	svc := NewPostService()

	detail, err := svc.View(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Author)
	assert.EqualValues(t, 1, detail.LikeCount)
	assert.EqualValues(t, 2, detail.CommentCount)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "bob", detail.Comments[0].Author)
	assert.Equal(t, "anonymous", detail.Comments[1].Author)
}

func TestPostViewDeletedCommentAuthor(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	post := seedPost(t, db, alice.ID, "Test")
	seedComment(t, db, post.ID, &bob.ID)
	require.NoError(t, db.Delete(&model.User{}, bob.ID).Error)
	svc := NewPostService()

	detail, err := svc.View(post.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "deleted user", detail.Comments[0].Author)
}

func TestLikeToggleRoundTrip(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	post := seedPost(t, db, alice.ID, "Test")
	svc := NewLikeService()

	liked, err := svc.Toggle(context.Background(), alice, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.Toggle(context.Background(), alice, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	var n int64
	require.NoError(t, db.Model(&model.Like{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestLikeToggleGuards(t *testing.T) {
	db := useTestDB(t)
	alice := seedUser(t, db, "alice", false)
	svc := NewLikeService()

	_, err := svc.Toggle(context.Background(), nil, 1)
	assert.ErrorIs(t, err, pkg.ErrUnauthenticated)

	_, err = svc.Toggle(context.Background(), alice, 404)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
