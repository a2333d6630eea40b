package service

import (
	"context"
	"fmt"

	"forum/internal/authz"
	"forum/internal/model"
	"forum/internal/pkg"
	"forum/internal/repository/mysql"
)

type PostService struct {
	repo     *mysql.PostRepository
	comments *mysql.CommentRepository
	likes    *mysql.LikeRepository
	users    *mysql.UserRepository
}

// PostView is a listing row: the post plus its author name and counters.
type PostView struct {
	model.Post
	Author       string `json:"author"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}

type CommentView struct {
	model.Comment
	Author string `json:"author"`
}

type PostDetail struct {
	PostView
	Comments []CommentView `json:"comments"`
}

func NewPostService() *PostService {
	return &PostService{
		repo:     &mysql.PostRepository{DB: mysql.DB},
		comments: &mysql.CommentRepository{DB: mysql.DB},
		likes:    &mysql.LikeRepository{DB: mysql.DB},
		users:    &mysql.UserRepository{DB: mysql.DB},
	}
}

func (s *PostService) Create(actor *model.User, title, content string) (*model.Post, error) {
	if err := authz.CanCreatePost(actor).Err(); err != nil {
		return nil, err
	}
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", pkg.ErrValidation)
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: actor.ID,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Edit(ctx context.Context, actor *model.User, postID uint64, title, content string) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return err
	}
	if err := authz.CanEditPost(actor, post).Err(); err != nil {
		return err
	}
	if title == "" || content == "" {
		return fmt.Errorf("%w: title and content are required", pkg.ErrValidation)
	}
	return s.repo.Update(ctx, postID, title, content, nil)
}

func (s *PostService) Delete(ctx context.Context, actor *model.User, postID uint64) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return err
	}
	if err := authz.CanDeletePost(actor, post).Err(); err != nil {
		return err
	}
	return s.repo.DeleteCascade(ctx, postID, nil)
}

// List returns all posts newest-first, decorated for the index page.
func (s *PostService) List() ([]PostView, error) {
	posts, err := s.repo.ListNewestFirst()
	if err != nil {
		return nil, err
	}
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		view, err := s.decorate(&posts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// View returns one post with its comment thread.
func (s *PostService) View(postID uint64) (*PostDetail, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	view, err := s.decorate(post)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	detail := &PostDetail{PostView: *view, Comments: make([]CommentView, 0, len(comments))}
	for i := range comments {
		detail.Comments = append(detail.Comments, CommentView{
			Comment: comments[i],
			Author:  s.authorName(comments[i].AuthorID),
		})
	}
	return detail, nil
}

func (s *PostService) decorate(post *model.Post) (*PostView, error) {
	likeCount, err := s.likes.CountByPost(post.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.comments.CountByPost(post.ID)
	if err != nil {
		return nil, err
	}
	author := uint64Ptr(post.AuthorID)
	return &PostView{
		Post:         *post,
		Author:       s.authorName(author),
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}, nil
}

func (s *PostService) authorName(authorID *uint64) string {
	if authorID == nil {
		return "anonymous"
	}
	user, err := s.users.FindByID(*authorID)
	if err != nil {
		return "deleted user"
	}
	return user.Username
}

func uint64Ptr(v uint64) *uint64 { return &v }
