package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"translation-backend/internal/auth"
	"translation-backend/internal/models"
	"translation-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type LoginResult struct {
	AccessToken string
	UserID      uint
	Email       string
}

type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Authenticate(token string) (uint, error)
}

type authService struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *logrus.Logger) AuthService {
	return &authService{
		users:    users,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register stores a new user. The email is kept exactly as given, so
// uniqueness is case-sensitive.
func (s *authService) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrValidation
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		UserID:      user.ID,
		Email:       user.Email,
	}, nil
}

func (s *authService) Authenticate(token string) (uint, error) {
	if token == "" {
		return 0, ErrUnauthenticated
	}
	userID, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return userID, nil
}
