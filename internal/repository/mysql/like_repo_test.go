package mysql

import (
	"context"
	"testing"

	"forum/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggleInsertsThenRemoves(t *testing.T) {
	db := newTestDB(t)
	repo := &LikeRepository{DB: db}
	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID, "Test")

	liked, err := repo.Toggle(context.Background(), user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, countRows(t, db, &model.Like{}, "post_id = ?", post.ID))

	// Second toggle returns to the unliked state.
	liked, err = repo.Toggle(context.Background(), user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, countRows(t, db, &model.Like{}, "post_id = ?", post.ID))
}

func TestLikeUniquePairConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := &LikeRepository{DB: db}
	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID, "Test")

	_, err := repo.Toggle(context.Background(), user.ID, post.ID)
	require.NoError(t, err)

	// A raw duplicate insert, as a racing toggle would attempt after losing
	// the check, must hit the unique index.
	err = db.Create(&model.Like{UserID: user.ID, PostID: post.ID}).Error
	assert.Error(t, err)
	assert.EqualValues(t, 1, countRows(t, db, &model.Like{}, "post_id = ?", post.ID))
}

func TestLikeTogglesAreIndependentPerPair(t *testing.T) {
	db := newTestDB(t)
	repo := &LikeRepository{DB: db}
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "Test")

	_, err := repo.Toggle(context.Background(), alice.ID, post.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(context.Background(), bob.ID, post.ID)
	require.NoError(t, err)

	n, err := repo.CountByPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	liked, err := repo.IsLiked(context.Background(), alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}
