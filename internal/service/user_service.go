package service

import (
	"errors"
	"fmt"

	"forum/internal/model"
	"forum/internal/pkg"
	"forum/internal/repository/mysql"
	"forum/internal/repository/redis"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   *mysql.UserRepository
	tokens *redis.TokenRepository
	smtp   pkg.SMTPConfig
}

func NewUserService(smtp pkg.SMTPConfig) *UserService {
	return &UserService{
		repo:   &mysql.UserRepository{DB: mysql.DB},
		tokens: &redis.TokenRepository{},
		smtp:   smtp,
	}
}

func (s *UserService) Register(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email and password are required", pkg.ErrValidation)
	}

	if _, err := s.repo.FindByUsername(username); err == nil {
		return fmt.Errorf("%w: username already taken", pkg.ErrValidation)
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return err
	}
	if _, err := s.repo.FindByEmail(email); err == nil {
		return fmt.Errorf("%w: email already registered", pkg.ErrValidation)
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return err
	}

	// Welcome mail is best-effort; registration never fails because of SMTP.
	if s.smtp.Enabled() {
		if err := pkg.SendEmail(s.smtp, email, "Welcome to the forum", pkg.WelcomeHTML(username)); err != nil {
			zap.L().Warn("welcome mail failed", zap.String("email", email), zap.Error(err))
		}
	}
	return nil
}

func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid username or password")
	}

	pair, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.AddUserToken(user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.tokens.DeleteUserToken(userID)
}

// Refresh rotates the pair and replaces the stored access token so the old
// one stops working immediately.
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Profile(userID uint64) (*model.User, error) {
	return s.repo.FindByID(userID)
}
