package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	UserTokenPrefix = "login:user:token"
	UserTokenExpire = 60 * 30
)

// TokenRepository stores the single active access token per user. Only the
// token itself lives here: role flags are re-read from the database on every
// request, never cached in the session.
type TokenRepository struct{}

func (r *TokenRepository) AddUserToken(userID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
	if err := Client.Set(context.Background(), key, token, time.Second*UserTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *TokenRepository) GetUserToken(userID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *TokenRepository) ExtendUserToken(userID uint64) error {
	key := fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
	_, err := Client.Expire(context.Background(), key, time.Second*UserTokenExpire).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *TokenRepository) DeleteUserToken(userID uint64) error {
	key := fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
