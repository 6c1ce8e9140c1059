package invites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/lacantina/turnos-api/internal/config"
)

// TokenTTL bounds how long an invitation link stays valid.
const TokenTTL = 7 * 24 * time.Hour

var ErrTokenNotFound = errors.New("invite token not found or expired")

// Store keeps single-use invitation tokens in Redis, token -> profile id.
type Store struct {
	client *redis.Client
}

func NewStore(cfg *config.Config) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func tokenKey(token string) string {
	return fmt.Sprintf("invite:%s", token)
}

// Create mints a fresh token for a profile.
func (s *Store) Create(ctx context.Context, profileID string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, tokenKey(token), profileID, TokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Consume resolves and deletes a token; a token can be spent once.
func (s *Store) Consume(ctx context.Context, token string) (string, error) {
	profileID, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err == redis.Nil {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}

	if err := s.client.Del(ctx, tokenKey(token)).Err(); err != nil {
		return "", err
	}
	return profileID, nil
}
