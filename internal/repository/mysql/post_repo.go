package mysql

import (
	"context"
	"errors"

	"forum/internal/model"
	"forum/internal/pkg"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return &post, err
}

func (r *PostRepository) ListNewestFirst() ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *PostRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Count(&n).Error
	return n, err
}

// Update rewrites title and content; the audit row (admin edits) commits with
// the update.
func (r *PostRepository) Update(ctx context.Context, postID uint64, title, content string, audit *model.ModerationOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Post{}).Where("id = ?", postID).
			Updates(map[string]any{"title": title, "content": content})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return pkg.ErrNotFound
		}
		if audit != nil {
			return tx.Create(audit).Error
		}
		return nil
	})
}

// DeleteCascade removes the post's comments, then its likes, then the post,
// all in one transaction so no row ever references a missing post.
func (r *PostRepository) DeleteCascade(ctx context.Context, postID uint64, audit *model.ModerationOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Post{}, postID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return pkg.ErrNotFound
		}
		if audit != nil {
			return tx.Create(audit).Error
		}
		return nil
	})
}
