// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "key"
	kvValueColumn = "value"
)

// SQLStore keeps keys as rows of the kv_store table created by the
// migrations. It works with both SQLite and PostgreSQL.
type SQLStore struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func NewSQLStore(db *DB, log *logger.Logger) *SQLStore {
	return &SQLStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder()),
		logger:  log,
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.builder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "SQLStore.Get").Str("key", key).Msg("error selecting value")
		return "", false, s.classify(ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query, args, err := s.builder.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix("ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " + kvValueColumn + " = excluded." + kvValueColumn).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLStore.Set").Str("key", key).Msg("error upserting value")
		return s.classify(ErrExecutingStatement, err)
	}

	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLStore.Remove").Str("key", key).Msg("error deleting value")
		return s.classify(ErrExecutingStatement, err)
	}

	return nil
}

// classify wraps err with kind and, for transient driver failures, with
// [ErrStorageUnavailable].
func (s *SQLStore) classify(kind, err error) error {
	if s.db.errorClassificator != nil && s.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
