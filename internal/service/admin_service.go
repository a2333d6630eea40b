package service

import (
	"context"
	"fmt"

	"forum/internal/authz"
	"forum/internal/model"
	"forum/internal/pkg"
	"forum/internal/repository/mysql"
)

// AdminService implements the moderation panel. Every mutation re-checks the
// authorization rules even though the routes are already admin-gated, and
// records a moderation event in the same transaction as the change.
type AdminService struct {
	users    *mysql.UserRepository
	posts    *mysql.PostRepository
	comments *mysql.CommentRepository
	likes    *mysql.LikeRepository
}

type AdminStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalPosts    int64 `json:"total_posts"`
	TotalComments int64 `json:"total_comments"`
	TotalLikes    int64 `json:"total_likes"`
}

func NewAdminService() *AdminService {
	return &AdminService{
		users:    &mysql.UserRepository{DB: mysql.DB},
		posts:    &mysql.PostRepository{DB: mysql.DB},
		comments: &mysql.CommentRepository{DB: mysql.DB},
		likes:    &mysql.LikeRepository{DB: mysql.DB},
	}
}

func (s *AdminService) Stats() (*AdminStats, error) {
	stats := &AdminStats{}
	var err error
	if stats.TotalUsers, err = s.users.Count(); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.posts.Count(); err != nil {
		return nil, err
	}
	if stats.TotalComments, err = s.comments.Count(); err != nil {
		return nil, err
	}
	if stats.TotalLikes, err = s.likes.Count(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AdminService) ListUsers() ([]model.User, error)       { return s.users.ListNewestFirst() }
func (s *AdminService) ListPosts() ([]model.Post, error)       { return s.posts.ListNewestFirst() }
func (s *AdminService) ListComments() ([]model.Comment, error) { return s.comments.ListNewestFirst() }

func (s *AdminService) MakeAdmin(ctx context.Context, actor *model.User, targetID uint64) error {
	if err := authz.CanManageRoles(actor).Err(); err != nil {
		return err
	}
	if _, err := s.users.FindByID(targetID); err != nil {
		return err
	}
	return s.users.SetAdmin(ctx, targetID, true, mysql.NewAudit("grant_admin", actor.ID, targetID))
}

// RemoveAdmin rejects self-revocation outright; an admin cannot strip their
// own flag.
func (s *AdminService) RemoveAdmin(ctx context.Context, actor *model.User, targetID uint64) error {
	target, err := s.users.FindByID(targetID)
	if err != nil {
		return err
	}
	if err := authz.CanRevokeAdmin(actor, target).Err(); err != nil {
		return err
	}
	return s.users.SetAdmin(ctx, targetID, false, mysql.NewAudit("revoke_admin", actor.ID, targetID))
}

func (s *AdminService) MakeModerator(ctx context.Context, actor *model.User, targetID uint64) error {
	if err := authz.CanManageRoles(actor).Err(); err != nil {
		return err
	}
	if _, err := s.users.FindByID(targetID); err != nil {
		return err
	}
	return s.users.SetModerator(ctx, targetID, true, mysql.NewAudit("grant_moderator", actor.ID, targetID))
}

// RemoveModerator carries no self-guard: an admin may drop their own
// moderator flag, matching the asymmetry of the admin rules.
func (s *AdminService) RemoveModerator(ctx context.Context, actor *model.User, targetID uint64) error {
	if err := authz.CanManageRoles(actor).Err(); err != nil {
		return err
	}
	if _, err := s.users.FindByID(targetID); err != nil {
		return err
	}
	return s.users.SetModerator(ctx, targetID, false, mysql.NewAudit("revoke_moderator", actor.ID, targetID))
}

// DeleteUser cascades through the target's content. Self-deletion through
// the admin path is rejected, not ignored.
func (s *AdminService) DeleteUser(ctx context.Context, actor *model.User, targetID uint64) error {
	target, err := s.users.FindByID(targetID)
	if err != nil {
		return err
	}
	if err := authz.CanDeleteUser(actor, target).Err(); err != nil {
		return err
	}
	return s.users.DeleteCascade(ctx, targetID, mysql.NewAudit("delete_user", actor.ID, targetID))
}

func (s *AdminService) DeletePost(ctx context.Context, actor *model.User, postID uint64) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if err := authz.CanDeletePost(actor, post).Err(); err != nil {
		return err
	}
	return s.posts.DeleteCascade(ctx, postID, mysql.NewAudit("delete_post", actor.ID, postID))
}

func (s *AdminService) DeleteComment(ctx context.Context, actor *model.User, commentID uint64) error {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return err
	}
	parent, err := s.posts.FindByID(comment.PostID)
	if err != nil {
		return err
	}
	if err := authz.CanDeleteComment(actor, comment, parent).Err(); err != nil {
		return err
	}
	return s.comments.Delete(ctx, commentID, mysql.NewAudit("delete_comment", actor.ID, commentID))
}

func (s *AdminService) EditPost(ctx context.Context, actor *model.User, postID uint64, title, content string) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if err := authz.CanEditPost(actor, post).Err(); err != nil {
		return err
	}
	if title == "" || content == "" {
		return fmt.Errorf("%w: title and content are required", pkg.ErrValidation)
	}
	return s.posts.Update(ctx, postID, title, content, mysql.NewAudit("edit_post", actor.ID, postID))
}

// EditComment always stamps edited_by_admin: this path is admin-only.
func (s *AdminService) EditComment(ctx context.Context, actor *model.User, commentID uint64, content string) error {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return err
	}
	if err := authz.CanEditComment(actor, comment).Err(); err != nil {
		return err
	}
	if content == "" {
		return fmt.Errorf("%w: comment cannot be empty", pkg.ErrValidation)
	}
	return s.comments.Update(ctx, commentID, content, true, mysql.NewAudit("edit_comment", actor.ID, commentID))
}
