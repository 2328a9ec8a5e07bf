package redis

import (
	"context"
	"fmt"

	"currency-wallet/internal/core/domain"
	"currency-wallet/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

const (
	fieldUserID       = "user_id"
	fieldUsername     = "username"
	fieldPasswordHash = "password_hash"
)

// UserStore implements ports.UserStore on a Redis hash per username.
type UserStore struct {
	client *goredis.Client
	prefix string
}

// NewUserStore creates a Redis-backed user store.
func NewUserStore(client *goredis.Client, prefix string) *UserStore {
	return &UserStore{
		client: client,
		prefix: prefix,
	}
}

func (s *UserStore) key(username string) string {
	return s.prefix + username
}

// GetByUsername returns the user record, or nil when absent.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	record, err := s.client.HGetAll(ctx, s.key(username)).Result()
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("redis user get: %w", err))
	}
	if len(record) == 0 {
		return nil, nil
	}

	return &domain.User{
		UserID:       record[fieldUserID],
		Username:     record[fieldUsername],
		PasswordHash: record[fieldPasswordHash],
	}, nil
}

// CreateUser provisions a user record. Fixture/seed path only.
func (s *UserStore) CreateUser(ctx context.Context, user *domain.User) error {
	err := s.client.HSet(ctx, s.key(user.Username), map[string]interface{}{
		fieldUserID:       user.UserID,
		fieldUsername:     user.Username,
		fieldPasswordHash: user.PasswordHash,
	}).Err()
	if err != nil {
		return apperror.ErrStoreUnavailable(fmt.Errorf("redis user create: %w", err))
	}
	return nil
}
