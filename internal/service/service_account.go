package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

type accountService struct {
	accounts  store.AccountRepository
	sessions  store.SessionRepository
	validator validators.Validator
	clock     birthday.Clock

	logger *logger.Logger
}

func NewAccountService(
	accounts store.AccountRepository,
	sessions store.SessionRepository,
	validator validators.Validator,
	clock birthday.Clock,
	log *logger.Logger,
) AccountService {
	return &accountService{
		accounts:  accounts,
		sessions:  sessions,
		validator: validator,
		clock:     clock,
		logger:    log,
	}
}

func (s *accountService) Register(ctx context.Context, form models.RegistrationForm) error {
	ctx, log := logger.WithOperation(ctx, s.logger, "account.register")

	if err := s.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Msg("registration form rejected")
		return err
	}

	if err := s.accounts.Register(ctx, form.Account()); err != nil {
		return fmt.Errorf("register account: %w", err)
	}

	log.Info().Msg("account registered")
	return nil
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (models.Session, error) {
	ctx, log := logger.WithOperation(ctx, s.logger, "account.authenticate")

	account, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		log.Debug().Err(err).Msg("authentication failed")
		return models.Session{}, fmt.Errorf("authenticate: %w", err)
	}

	if err = s.sessions.SetCurrentUser(ctx, account.Email); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	log.Info().Msg("user logged in")
	return models.Session{
		Username:  account.Username,
		Email:     account.Email,
		StartedAt: s.clock.Now(),
	}, nil
}

func (s *accountService) Logout(ctx context.Context, session models.Session) error {
	if !session.Valid() {
		return ErrNoActiveSession
	}

	_, log := logger.WithOperation(ctx, s.logger, "account.logout")
	log.Info().Dur("session_length", s.clock.Now().Sub(session.StartedAt)).Msg("user logged out")

	return nil
}

func (s *accountService) LastUser(ctx context.Context) (string, error) {
	email, found, err := s.sessions.GetCurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("read last user: %w", err)
	}
	if !found {
		return "", nil
	}
	return email, nil
}
