package mysql

import (
	"context"
	"errors"
	"time"

	"forum/internal/model"
	"forum/internal/pkg"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return &comment, err
}

func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("post_id = ?", postID).Order("created_at ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *CommentRepository) ListNewestFirst() ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *CommentRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Comment{}).Count(&n).Error
	return n, err
}

func (r *CommentRepository) CountByPost(postID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&n).Error
	return n, err
}

// Update rewrites the content. Admin edits stamp edited_by_admin; every edit
// stamps edited_at.
func (r *CommentRepository) Update(ctx context.Context, commentID uint64, content string, byAdmin bool, audit *model.ModerationOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		updates := map[string]any{"content": content, "edited_at": &now}
		if byAdmin {
			updates["edited_by_admin"] = true
		}
		res := tx.Model(&model.Comment{}).Where("id = ?", commentID).Updates(updates)
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

func (r *CommentRepository) Delete(ctx context.Context, commentID uint64, audit *model.ModerationOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Comment{}, commentID)
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
