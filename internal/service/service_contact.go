package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

type contactService struct {
	contacts  store.ContactRepository
	validator validators.Validator
	clock     birthday.Clock

	logger *logger.Logger
}

func NewContactService(
	contacts store.ContactRepository,
	validator validators.Validator,
	clock birthday.Clock,
	log *logger.Logger,
) ContactService {
	return &contactService{
		contacts:  contacts,
		validator: validator,
		clock:     clock,
		logger:    log,
	}
}

func (s *contactService) List(ctx context.Context, session models.Session) ([]models.ContactEntry, error) {
	if !session.Valid() {
		return nil, ErrNoActiveSession
	}

	contacts, err := s.contacts.ListContacts(ctx, session.Email)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return annotate(session.Email, contacts, s.clock.Now())
}

func (s *contactService) Get(ctx context.Context, session models.Session, index int) (models.ContactEntry, error) {
	entries, err := s.List(ctx, session)
	if err != nil {
		return models.ContactEntry{}, err
	}

	if index < 0 || index >= len(entries) {
		return models.ContactEntry{}, store.ErrContactNotFound
	}

	return entries[index], nil
}

func (s *contactService) Add(ctx context.Context, session models.Session, contact models.Contact) error {
	if !session.Valid() {
		return ErrNoActiveSession
	}

	ctx, log := logger.WithOperation(ctx, s.logger, "contacts.add")

	if err := s.validator.Validate(ctx, contact); err != nil {
		log.Debug().Err(err).Msg("contact rejected")
		return err
	}

	if err := s.contacts.AddContact(ctx, session.Email, contact); err != nil {
		return fmt.Errorf("add contact: %w", err)
	}

	log.Info().Msg("contact added")
	return nil
}

func (s *contactService) Remove(ctx context.Context, session models.Session, index int) ([]models.ContactEntry, error) {
	if !session.Valid() {
		return nil, ErrNoActiveSession
	}

	ctx, log := logger.WithOperation(ctx, s.logger, "contacts.remove")

	remainder, err := s.contacts.RemoveContact(ctx, session.Email, index)
	if err != nil {
		return nil, fmt.Errorf("remove contact: %w", err)
	}

	log.Info().Int("index", index).Int("left", len(remainder)).Msg("contact removed")
	return annotate(session.Email, remainder, s.clock.Now())
}

// annotate computes the presentation entries of contacts for today. A
// stored birthday that no longer parses is reported as corrupt data.
func annotate(owner string, contacts []models.Contact, today time.Time) ([]models.ContactEntry, error) {
	entries := make([]models.ContactEntry, 0, len(contacts))
	for i, c := range contacts {
		date, err := birthday.ParseDate(c.Birthday)
		if err != nil {
			return nil, &store.CorruptStoreError{
				Key: store.ContactsKey(owner),
				Err: fmt.Errorf("contact %d: %w", i, err),
			}
		}

		offset := birthday.DaysUntilNextOccurrence(date, today)
		entries = append(entries, models.ContactEntry{
			Position:   i,
			Contact:    c,
			OffsetDays: offset,
			Category:   birthday.Classify(offset),
		})
	}
	return entries, nil
}
