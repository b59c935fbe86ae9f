// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

type contactRepository struct {
	kv     KeyValueStore
	tx     *Transactor
	logger *logger.Logger
}

func NewContactRepository(kv KeyValueStore, tx *Transactor, log *logger.Logger) ContactRepository {
	return &contactRepository{
		kv:     kv,
		tx:     tx,
		logger: log,
	}
}

func (r *contactRepository) ListContacts(ctx context.Context, owner string) ([]models.Contact, error) {
	key := ContactsKey(owner)

	raw, found, err := r.kv.Get(ctx, key)
	if err != nil {
		r.logger.Err(err).Str("func", "contactRepository.ListContacts").Str("key", key).Msg("error reading contacts")
		return nil, fmt.Errorf("error reading contacts: %w", err)
	}

	contacts, err := decodeContacts(key, raw, found)
	if err != nil {
		r.logger.Err(err).Str("func", "contactRepository.ListContacts").Str("key", key).Msg("error decoding contacts")
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepository) AddContact(ctx context.Context, owner string, contact models.Contact) error {
	key := ContactsKey(owner)

	err := r.tx.Update(ctx, key, func(current string, found bool) (string, error) {
		contacts, err := decodeContacts(key, current, found)
		if err != nil {
			return "", err
		}

		return encodeContacts(append(contacts, contact))
	})
	if err != nil {
		r.logger.Err(err).Str("func", "contactRepository.AddContact").Str("key", key).Msg("error adding contact")
		return fmt.Errorf("error adding contact: %w", err)
	}

	return nil
}

func (r *contactRepository) RemoveContact(ctx context.Context, owner string, index int) ([]models.Contact, error) {
	key := ContactsKey(owner)

	var remainder []models.Contact
	err := r.tx.Update(ctx, key, func(current string, found bool) (string, error) {
		contacts, err := decodeContacts(key, current, found)
		if err != nil {
			return "", err
		}
		if index < 0 || index >= len(contacts) {
			return "", ErrContactNotFound
		}

		remainder = WithoutIndex(contacts, index)
		return encodeContacts(remainder)
	})
	if err != nil {
		r.logger.Err(err).Str("func", "contactRepository.RemoveContact").Str("key", key).Int("index", index).Msg("error removing contact")
		return nil, fmt.Errorf("error removing contact: %w", err)
	}

	return remainder, nil
}

// WithoutIndex returns a new slice holding contacts minus the element at
// index, in their original order. An out-of-range index yields an unchanged
// copy. contacts itself is never modified.
func WithoutIndex(contacts []models.Contact, index int) []models.Contact {
	out := make([]models.Contact, 0, len(contacts))
	for i, c := range contacts {
		if i == index {
			continue
		}
		out = append(out, c)
	}
	return out
}

func decodeContacts(key, raw string, found bool) ([]models.Contact, error) {
	contacts := []models.Contact{}
	if !found {
		return contacts, nil
	}

	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		return nil, &CorruptStoreError{Key: key, Err: err}
	}
	if contacts == nil {
		// stored "null"
		contacts = []models.Contact{}
	}

	return contacts, nil
}

func encodeContacts(contacts []models.Contact) (string, error) {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	b, err := json.Marshal(contacts)
	if err != nil {
		return "", fmt.Errorf("error encoding contacts: %w", err)
	}
	return string(b), nil
}
