package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Ianrury/api-tash-manajement/internal/auth"
	dom "github.com/Ianrury/api-tash-manajement/internal/domain"
	"github.com/Ianrury/api-tash-manajement/internal/repo"
	"github.com/Ianrury/api-tash-manajement/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not distinguish them.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
)

// UserService handles registration and credential checks.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account with a hashed password. A taken username
// surfaces as ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, name, username, password string) (dom.User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	hash, err := auth.HashPassword(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, name, username, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks username and password; returns the user if
// valid. The not-found and bad-password paths are deliberately merged.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
