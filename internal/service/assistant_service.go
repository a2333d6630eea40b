package service

import (
	"forum/internal/pkg"
	"forum/internal/repository/mysql"
)

// AssistantService generates the canned assistant reply for a comment. It is
// a stateless keyword classifier over the comment text and the parent post
// title, nothing resembling a model call.
type AssistantService struct {
	comments *mysql.CommentRepository
	posts    *mysql.PostRepository
}

func NewAssistantService() *AssistantService {
	return &AssistantService{
		comments: &mysql.CommentRepository{DB: mysql.DB},
		posts:    &mysql.PostRepository{DB: mysql.DB},
	}
}

func (s *AssistantService) Reply(commentID uint64) (string, error) {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return "", err
	}
	post, err := s.posts.FindByID(comment.PostID)
	if err != nil {
		return "", err
	}
	return pkg.AssistantReply(comment.Content, post.Title), nil
}
