package services

import (
	"context"
	"fmt"

	"github.com/churn/api/internal/core/domain"
	"github.com/churn/api/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	users  ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService) ports.AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*ports.TokenOutput, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(username)
}

func (s *authService) Login(ctx context.Context, username, password string) (*ports.TokenOutput, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(username)
}

func (s *authService) issue(username string) (*ports.TokenOutput, error) {
	token, expiresIn, err := s.tokens.Issue(username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &ports.TokenOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(expiresIn.Seconds()),
	}, nil
}
