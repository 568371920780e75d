package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisKey     = "community-pulse:session"
	redisConnectTimeout = 5 * time.Second
)

// RedisBackend persists the session as a single JSON value in Redis.
// Keeping the whole document under one key makes Save atomic without a
// transaction.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend connects to Redis using a redis:// URL and verifies
// the connection with a ping.
func NewRedisBackend(url string) (*RedisBackend, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("redis URL is required")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisBackend{client: client, key: defaultRedisKey}, nil
}

// Load reads the session document. A missing key is an empty session.
func (b *RedisBackend) Load(ctx context.Context) (Session, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, nil
		}
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Save writes the session document. No TTL: the client tracks no expiry,
// a stale token simply fails at the server.
func (b *RedisBackend) Save(ctx context.Context, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return b.client.Set(ctx, b.key, data, 0).Err()
}

// Clear removes the session document. Deleting an absent key succeeds.
func (b *RedisBackend) Clear(ctx context.Context) error {
	return b.client.Del(ctx, b.key).Err()
}

// Close releases the underlying connection pool.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
