package mysql

import (
	"context"
	"errors"

	"forum/internal/model"
	"forum/internal/pkg"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	return &user, err
}

func (r *UserRepository) ListNewestFirst() ([]model.User, error) {
	var list []model.User
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.User{}).Count(&n).Error
	return n, err
}

// SetAdmin flips the admin flag; the audit row commits with the update.
func (r *UserRepository) SetAdmin(ctx context.Context, targetID uint64, isAdmin bool, audit *model.ModerationOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("id = ?", targetID).Update("is_admin", isAdmin)
		if res.Error != nil {
			return res.Error
		}
		if audit != nil {
			return tx.Create(audit).Error
		}
		return nil
	})
}

func (r *UserRepository) SetModerator(ctx context.Context, targetID uint64, isModerator bool, audit *model.ModerationOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("id = ?", targetID).Update("is_moderator", isModerator)
		if res.Error != nil {
			return res.Error
		}
		if audit != nil {
			return tx.Create(audit).Error
		}
		return nil
	})
}

// DeleteCascade removes a user and everything hanging off them, in dependency
// order: comments and likes on the user's posts, the posts themselves, the
// user's own comments on other posts, the user's likes, then the user row.
func (r *UserRepository) DeleteCascade(ctx context.Context, userID uint64, audit *model.ModerationOutbox) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint64
		if err := tx.Model(&model.Post{}).Where("author_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("author_id = ?", userID).Delete(&model.Post{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", userID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, userID)
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
