package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-birthday-keeper/internal/config"
	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
)

// Backend identifies which [KeyValueStore] implementation a DSN selects.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

const (
	memoryDSN        = "memory"
	filePrefix       = "file://"
	redisPrefix      = "redis://"
	redisTLSPrefix   = "rediss://"
	postgresPrefix   = "postgres://"
	postgresqlPrefix = "postgresql://"
)

func isRedisDSN(dsn string) bool {
	return strings.HasPrefix(dsn, redisPrefix) || strings.HasPrefix(dsn, redisTLSPrefix)
}

// SelectBackend maps storage settings to a backend. An explicit DSN scheme
// wins; a configured redis address selects redis only when the DSN names no
// other backend explicitly.
func SelectBackend(cfg config.ClientStorage) Backend {
	dsn := cfg.DB.DSN

	switch {
	case dsn == memoryDSN:
		return BackendMemory
	case strings.HasPrefix(dsn, filePrefix):
		return BackendFile
	case strings.HasPrefix(dsn, postgresPrefix), strings.HasPrefix(dsn, postgresqlPrefix):
		return BackendPostgres
	case isRedisDSN(dsn):
		return BackendRedis
	case cfg.Redis.Address != "":
		return BackendRedis
	}

	return BackendSQLite
}

// ClientStorages groups all storage repositories into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// Backend is the selected key-value implementation.
	Backend Backend

	ContactRepository ContactRepository
	AccountRepository AccountRepository
	SessionRepository SessionRepository

	closer io.Closer
}

// NewClientStorages opens the backend selected by cfg, runs the schema
// migrations for SQL backends, and wires the repositories on top of a
// [TimeoutStore] bounded by cfg.Timeout.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	backend := SelectBackend(cfg)
	log.Info().Str("backend", string(backend)).Msg("creating new storages...")

	kv, closer, err := openKeyValueStore(ctx, backend, cfg, log)
	if err != nil {
		return nil, err
	}

	storages := NewStoragesFromKV(kv, cfg.Timeout, log)
	storages.Backend = backend
	storages.closer = closer

	return storages, nil
}

// NewStoragesFromKV wires the repositories on top of an already opened
// key-value store.
func NewStoragesFromKV(kv KeyValueStore, timeout time.Duration, log *logger.Logger) *ClientStorages {
	bounded := NewTimeoutStore(kv, timeout)
	tx := NewTransactor(bounded)

	return &ClientStorages{
		ContactRepository: NewContactRepository(bounded, tx, log),
		AccountRepository: NewAccountRepository(bounded, tx, log),
		SessionRepository: NewSessionRepository(bounded, log),
	}
}

// Close releases the backend connection, if any.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func openKeyValueStore(ctx context.Context, backend Backend, cfg config.ClientStorage, log *logger.Logger) (KeyValueStore, io.Closer, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil, nil

	case BackendFile:
		fs, err := NewFileStore(strings.TrimPrefix(cfg.DB.DSN, filePrefix))
		if err != nil {
			return nil, nil, fmt.Errorf("file storage error: %w", err)
		}
		return fs, nil, nil

	case BackendRedis:
		rdb, err := NewConnectRedis(ctx, cfg.DB.DSN, cfg.Redis, log)
		if err != nil {
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return NewRedisStore(rdb, log), rdb, nil

	case BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return migratedSQLStore(db, log)

	default:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return migratedSQLStore(db, log)
	}
}

func migratedSQLStore(db *DB, log *logger.Logger) (KeyValueStore, io.Closer, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}
	return NewSQLStore(db, log), db, nil
}
