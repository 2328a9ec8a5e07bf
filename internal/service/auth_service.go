package service

import (
	"context"

	"currency-wallet/internal/core/domain"
	"currency-wallet/internal/core/ports"
	"currency-wallet/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService over the user store.
type AuthServiceImpl struct {
	users   ports.UserStore
	hashSvc ports.HashService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(users ports.UserStore, hashSvc ports.HashService) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:   users,
		hashSvc: hashSvc,
	}
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !valid {
		return nil, apperror.ErrInvalidCredentials()
	}

	return user, nil
}
