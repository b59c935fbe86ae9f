package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-birthday-keeper/internal/config"
	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps every key as a plain redis string without expiry.
type RedisStore struct {
	client redis.Cmdable
	logger *logger.Logger
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.Cmdable, log *logger.Logger) *RedisStore {
	return &RedisStore{client: client, logger: log}
}

// NewConnectRedis opens a client for cfg and pings it. A "redis://" DSN takes
// precedence over the discrete address settings.
func NewConnectRedis(ctx context.Context, dsn string, cfg config.ClientRedis, log *logger.Logger) (*redis.Client, error) {
	var opts *redis.Options
	if isRedisDSN(dsn) {
		parsed, err := redis.ParseURL(dsn)
		if err != nil {
			log.Err(err).Str("func", "NewConnectRedis").Msg("error parsing redis url")
			return nil, fmt.Errorf("error parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("%w: failed to connect to redis: %w", ErrStorageUnavailable, err)
	}
	log.Debug().Str("func", "NewConnectRedis").Str("addr", opts.Addr).Msg("connected to redis successfully")

	return rdb, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "RedisStore.Get").Str("key", key).Msg("redis GET failed")
		return "", false, redisError("get", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Err(err).Str("func", "RedisStore.Set").Str("key", key).Msg("redis SET failed")
		return redisError("set", err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Err(err).Str("func", "RedisStore.Remove").Str("key", key).Msg("redis DEL failed")
		return redisError("del", err)
	}
	return nil
}

// redisError keeps context errors as they are and marks everything else as
// a backend outage.
func redisError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("redis %s: %w", op, err)
	}
	return fmt.Errorf("%w: redis %s: %w", ErrStorageUnavailable, op, err)
}
