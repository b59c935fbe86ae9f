package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
)

type sessionRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewSessionRepository(kv KeyValueStore, log *logger.Logger) SessionRepository {
	return &sessionRepository{kv: kv, logger: log}
}

func (r *sessionRepository) SetCurrentUser(ctx context.Context, email string) error {
	if err := r.kv.Set(ctx, KeyCurrentUser, email); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.SetCurrentUser").Msg("error saving current user")
		return fmt.Errorf("error saving current user: %w", err)
	}
	return nil
}

func (r *sessionRepository) GetCurrentUser(ctx context.Context) (string, bool, error) {
	email, found, err := r.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.GetCurrentUser").Msg("error reading current user")
		return "", false, fmt.Errorf("error reading current user: %w", err)
	}
	if email == "" {
		found = false
	}
	return email, found, nil
}

func (r *sessionRepository) ClearCurrentUser(ctx context.Context) error {
	if err := r.kv.Remove(ctx, KeyCurrentUser); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.ClearCurrentUser").Msg("error clearing current user")
		return fmt.Errorf("error clearing current user: %w", err)
	}
	return nil
}
