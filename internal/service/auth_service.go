package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studyhub/internal/auth"
	apperrors "studyhub/internal/errors"
	"studyhub/internal/metrics"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

var errPasswordTooLong = apperrors.Validation("password must be at most %d bytes", auth.MaxPasswordBytes)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	users     repository.UserRepository
	hasher    *auth.PasswordHasher
	tokens    *auth.JWTService
	metrics   *metrics.Metrics
	dummyHash string
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTService, m *metrics.Metrics) (AuthService, error) {
	// Unknown usernames are checked against this hash so a failed lookup costs
	// the same as a wrong password.
	dummy, err := hasher.Hash("studyhub-timing-placeholder")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &authService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		metrics:   m,
		dummyHash: dummy,
	}, nil
}

// Register creates a user with a hashed password.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if len(password) > auth.MaxPasswordBytes {
		return nil, errPasswordTooLong
	}
	if err := s.ensureAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, apperrors.Store("create user", err)
	}
	return user, nil
}

func (s *authService) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return apperrors.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Store("check username", err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperrors.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Store("check email", err)
	}
	return nil
}

// Login authenticates a user and issues a session token. Unknown users and wrong
// passwords fail with the same error.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Store("find user", err)
		}
		s.hasher.Verify(password, s.dummyHash)
		s.metrics.Login(metrics.LoginUnknownUser)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.metrics.Login(metrics.LoginBadPassword)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	s.metrics.Login(metrics.LoginSuccess)
	return token, user, nil
}
