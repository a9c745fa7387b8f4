package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// AuthService handles account registration and login. Token signing and
// password hashing live in pkg/auth; this service only orchestrates.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// TokenPair is the login/registration response.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates an account and returns a signed token pair.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, nil, apperr.InvalidArgument("name, email and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, nil, apperr.Storage("hash password", err)
	}

	user := &models.User{Name: name, Email: email, Password: hash}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, nil, apperr.Storage("user insert", err)
	}

	pair, err := s.tokens(user)
	if err != nil {
		return nil, nil, err
	}

	logger.WithCtx(ctx).Info("user registered", "user_id", user.ID.Hex(), "email", email)
	user.Password = ""
	return user, pair, nil
}

// Login verifies credentials and returns a signed token pair. Bad email and
// bad password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Unauthenticated()
		}
		return nil, apperr.Storage("user lookup", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperr.Unauthenticated()
	}

	return s.tokens(user)
}

// Profile returns the caller's own account document.
func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *AuthService) tokens(user *models.User) (*TokenPair, error) {
	token, err := auth.GenerateToken(user.ID.Hex(), user.IsInternal)
	if err != nil {
		return nil, apperr.Storage("sign token", err)
	}
	refresh, err := auth.GenerateRefreshToken(user.ID.Hex(), user.IsInternal)
	if err != nil {
		return nil, apperr.Storage("sign refresh token", err)
	}
	return &TokenPair{Token: token, RefreshToken: refresh}, nil
}
