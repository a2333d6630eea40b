package service

import (
	"context"

	"forum/internal/authz"
	"forum/internal/model"
	"forum/internal/repository/mysql"
)

type LikeService struct {
	repo  *mysql.LikeRepository
	posts *mysql.PostRepository
}

func NewLikeService() *LikeService {
	return &LikeService{
		repo:  &mysql.LikeRepository{DB: mysql.DB},
		posts: &mysql.PostRepository{DB: mysql.DB},
	}
}

// Toggle likes the post if the actor has not liked it yet, otherwise removes
// the like. Returns the resulting state (true = liked).
func (s *LikeService) Toggle(ctx context.Context, actor *model.User, postID uint64) (bool, error) {
	if err := authz.CanLikePost(actor).Err(); err != nil {
		return false, err
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		return false, err
	}
	return s.repo.Toggle(ctx, actor.ID, postID)
}
