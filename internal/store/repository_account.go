package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

type accountRepository struct {
	kv     KeyValueStore
	tx     *Transactor
	logger *logger.Logger
}

func NewAccountRepository(kv KeyValueStore, tx *Transactor, log *logger.Logger) AccountRepository {
	return &accountRepository{
		kv:     kv,
		tx:     tx,
		logger: log,
	}
}

func (r *accountRepository) Register(ctx context.Context, account models.Account) error {
	err := r.tx.Update(ctx, KeyUsers, func(current string, found bool) (string, error) {
		accounts, err := decodeAccounts(current, found)
		if err != nil {
			return "", err
		}

		for _, a := range accounts {
			if a.Email == account.Email {
				return "", ErrAccountAlreadyExists
			}
		}

		b, err := json.Marshal(append(accounts, account))
		if err != nil {
			return "", fmt.Errorf("error encoding accounts: %w", err)
		}
		return string(b), nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "accountRepository.Register").Msg("error registering account")
		return fmt.Errorf("error registering account: %w", err)
	}

	return nil
}

func (r *accountRepository) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	raw, found, err := r.kv.Get(ctx, KeyUsers)
	if err != nil {
		r.logger.Err(err).Str("func", "accountRepository.Authenticate").Msg("error reading accounts")
		return models.Account{}, fmt.Errorf("error reading accounts: %w", err)
	}

	accounts, err := decodeAccounts(raw, found)
	if err != nil {
		r.logger.Err(err).Str("func", "accountRepository.Authenticate").Msg("error decoding accounts")
		return models.Account{}, err
	}

	for _, a := range accounts {
		if a.Email == email && a.Password == password {
			return a, nil
		}
	}

	return models.Account{}, ErrInvalidCredentials
}

func decodeAccounts(raw string, found bool) ([]models.Account, error) {
	var accounts []models.Account
	if !found {
		return accounts, nil
	}

	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, &CorruptStoreError{Key: KeyUsers, Err: err}
	}

	return accounts, nil
}
