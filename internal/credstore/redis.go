package credstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reverbify/musicfn/internal/shared"
)

const defaultKeyPrefix = "reverbify:creds:"

// RedisStore implements [Store] backed by Redis.
//
// Records are stored as JSON values under <prefix><user_id> keys.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new [RedisStore] and verifies connectivity.
func NewRedisStore(cfg shared.StoreConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) key(userID string) string {
	return s.prefix + userID
}

// Get retrieves the credential record for a user.
func (s *RedisStore) Get(ctx context.Context, userID string) (*Record, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode stored record: %w", err)
	}

	return &record, nil
}

// Put stores or replaces the credential record for a user.
func (s *RedisStore) Put(ctx context.Context, userID string, record *Record) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := s.client.Set(ctx, s.key(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	return nil
}

// Close closes the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
