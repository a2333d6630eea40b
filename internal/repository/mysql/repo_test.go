package mysql

import (
	"path/filepath"
	"testing"

	"forum/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway SQLite database with the production schema.
// The repositories only use portable gorm queries, so SQLite stands in for
// MySQL in tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "forum.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.ModerationOutbox{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint64, title string) *model.Post {
	t.Helper()
	post := &model.Post{Title: title, Content: "body", AuthorID: authorID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func seedComment(t *testing.T, db *gorm.DB, postID uint64, authorID *uint64) *model.Comment {
	t.Helper()
	comment := &model.Comment{Content: "c", PostID: postID, AuthorID: authorID, IsAnonymous: authorID == nil}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func countRows(t *testing.T, db *gorm.DB, m any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Where(query, args...).Count(&n).Error)
	return n
}
