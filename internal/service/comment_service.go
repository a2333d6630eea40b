package service

import (
	"context"
	"fmt"

	"forum/internal/authz"
	"forum/internal/model"
	"forum/internal/pkg"
	"forum/internal/repository/mysql"
)

type CommentService struct {
	repo  *mysql.CommentRepository
	posts *mysql.PostRepository
}

func NewCommentService() *CommentService {
	return &CommentService{
		repo:  &mysql.CommentRepository{DB: mysql.DB},
		posts: &mysql.PostRepository{DB: mysql.DB},
	}
}

// Add attaches a comment to a post. Anonymous comments carry no author and
// need no identity; identified comments require a logged-in actor.
func (s *CommentService) Add(actor *model.User, postID uint64, content string, isAnonymous bool) (*model.Comment, error) {
	if _, err := s.posts.FindByID(postID); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", pkg.ErrValidation)
	}

	comment := &model.Comment{
		Content:     content,
		PostID:      postID,
		IsAnonymous: isAnonymous,
	}
	if isAnonymous {
		if err := authz.CanPostAnonymousComment().Err(); err != nil {
			return nil, err
		}
	} else {
		if actor == nil {
			return nil, fmt.Errorf("%w: log in or tick the anonymous box", pkg.ErrUnauthenticated)
		}
		comment.AuthorID = &actor.ID
	}

	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Edit rewrites a comment's content. When the actor is an admin, the comment
// is additionally stamped edited_by_admin.
func (s *CommentService) Edit(ctx context.Context, actor *model.User, commentID uint64, content string) (uint64, error) {
	comment, err := s.repo.FindByID(commentID)
	if err != nil {
		return 0, err
	}
	if err := authz.CanEditComment(actor, comment).Err(); err != nil {
		return 0, err
	}
	if content == "" {
		return 0, fmt.Errorf("%w: comment cannot be empty", pkg.ErrValidation)
	}
	if err := s.repo.Update(ctx, commentID, content, actor.IsAdmin, nil); err != nil {
		return 0, err
	}
	return comment.PostID, nil
}

// Delete removes a comment; allowed for the comment owner, the parent post
// owner, or an admin. Returns the parent post id for the redirect.
func (s *CommentService) Delete(ctx context.Context, actor *model.User, commentID uint64) (uint64, error) {
	comment, err := s.repo.FindByID(commentID)
	if err != nil {
		return 0, err
	}
	parent, err := s.posts.FindByID(comment.PostID)
	if err != nil {
		return 0, err
	}
	if err := authz.CanDeleteComment(actor, comment, parent).Err(); err != nil {
		return 0, err
	}
	if err := s.repo.Delete(ctx, commentID, nil); err != nil {
		return 0, err
	}
	return comment.PostID, nil
}
