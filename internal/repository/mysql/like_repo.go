package mysql

import (
	"context"
	"errors"

	"forum/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

// Toggle inserts the like if absent, removes it otherwise. The check and the
// act run inside one transaction; the unique (user_id, post_id) index is the
// last line of defense if two toggles for the same pair still race.
func (r *LikeRepository) Toggle(ctx context.Context, userID, postID uint64) (liked bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like model.Like
		findErr := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
		if findErr == nil {
			liked = false
			return tx.Delete(&like).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}
		liked = true
		return tx.Create(&model.Like{UserID: userID, PostID: postID}).Error
	})
	return liked, err
}

func (r *LikeRepository) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error
	return n > 0, err
}

func (r *LikeRepository) CountByPost(postID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Like{}).Where("post_id = ?", postID).Count(&n).Error
	return n, err
}

func (r *LikeRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Like{}).Count(&n).Error
	return n, err
}
