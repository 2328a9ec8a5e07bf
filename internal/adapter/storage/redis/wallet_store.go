package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"currency-wallet/internal/core/domain"
	"currency-wallet/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	fieldLocalCurrency = "local_currency"
	balanceFieldPrefix = "balance:"

	// Upper bound on optimistic-concurrency retries when a concurrent
	// writer invalidates the watched key. Conflicts on a single user's
	// wallet are short-lived, so a handful of attempts is plenty.
	applyDeltaAttempts = 16
)

// WalletStore implements ports.WalletStore on a Redis hash per user.
//
// Layout: key "<prefix><user_id>", field "local_currency" plus one
// "balance:<CODE>" field per held currency, stored as a decimal string.
// Mutations go through WATCH/MULTI/EXEC so the non-negative-balance
// condition is evaluated atomically with the write.
type WalletStore struct {
	client *goredis.Client
	prefix string
	log    zerolog.Logger
}

// NewWalletStore creates a Redis-backed wallet store.
func NewWalletStore(client *goredis.Client, prefix string, log zerolog.Logger) *WalletStore {
	return &WalletStore{
		client: client,
		prefix: prefix,
		log:    log,
	}
}

func (s *WalletStore) key(userID string) string {
	return s.prefix + userID
}

func balanceField(code domain.Currency) string {
	return balanceFieldPrefix + string(code)
}

// FetchRaw performs a point lookup of the full wallet record.
func (s *WalletStore) FetchRaw(ctx context.Context, userID string) (*domain.Wallet, error) {
	record, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("redis wallet get: %w", err))
	}
	if len(record) == 0 {
		return nil, apperror.ErrWalletNotFound()
	}

	return parseWalletRecord(userID, record)
}

// ApplyDelta atomically adds delta to the balance of the given currency.
// When delta is negative the write is conditioned on the current balance
// covering it; the check and the write happen under WATCH so a concurrent
// mutation invalidates the transaction instead of racing it.
func (s *WalletStore) ApplyDelta(ctx context.Context, userID string, code domain.Currency, delta decimal.Decimal) error {
	key := s.key(userID)
	field := balanceField(code)

	txn := func(tx *goredis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			return apperror.ErrWalletNotFound()
		}

		current := decimal.Zero
		raw, err := tx.HGet(ctx, key, field).Result()
		switch {
		case err == nil:
			current, err = decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("corrupt balance %q for %s/%s: %w", raw, userID, code, err)
			}
		case errors.Is(err, goredis.Nil):
			// Field absent: created with the delta value on adds.
		default:
			return err
		}

		next := current.Add(delta)
		if delta.IsNegative() && next.IsNegative() {
			return apperror.ErrInsufficientBalance()
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, field, next.String())
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= applyDeltaAttempts; attempt++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			s.log.Debug().
				Str("user_id", userID).
				Str("currency", string(code)).
				Int("attempt", attempt).
				Msg("wallet CAS conflict, retrying")
			continue
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperror.ErrStoreUnavailable(fmt.Errorf("redis wallet update: %w", err))
	}

	return apperror.ErrStoreUnavailable(fmt.Errorf("wallet update for %s/%s: %w", userID, code, goredis.TxFailedErr))
}

// CreateWallet provisions a wallet record. Fixture/seed path only.
func (s *WalletStore) CreateWallet(ctx context.Context, wallet *domain.Wallet) error {
	values := map[string]interface{}{
		fieldLocalCurrency: string(wallet.LocalCurrency),
	}
	for code, balance := range wallet.Balances {
		values[balanceField(code)] = balance.String()
	}

	if err := s.client.HSet(ctx, s.key(wallet.UserID), values).Err(); err != nil {
		return apperror.ErrStoreUnavailable(fmt.Errorf("redis wallet create: %w", err))
	}
	return nil
}

func parseWalletRecord(userID string, record map[string]string) (*domain.Wallet, error) {
	wallet := &domain.Wallet{
		UserID:   userID,
		Balances: make(map[domain.Currency]decimal.Decimal, len(record)-1),
	}

	for field, value := range record {
		switch {
		case field == fieldLocalCurrency:
			local, err := domain.ParseLocalCurrency(value)
			if err != nil {
				return nil, err
			}
			wallet.LocalCurrency = local
		case strings.HasPrefix(field, balanceFieldPrefix):
			code, err := domain.ParseCurrency(strings.TrimPrefix(field, balanceFieldPrefix))
			if err != nil {
				return nil, err
			}
			balance, err := decimal.NewFromString(value)
			if err != nil {
				return nil, fmt.Errorf("corrupt balance %q for %s/%s: %w", value, userID, code, err)
			}
			wallet.Balances[code] = balance
		}
	}

	return wallet, nil
}
