package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountRepo(kv KeyValueStore) AccountRepository {
	return NewAccountRepository(kv, NewTransactor(kv), logger.Nop())
}

func TestAccountRepository_RegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := newTestAccountRepo(NewMemoryStore())
	acc := models.Account{Username: "ana", Email: ana, Password: "pw"}

	require.NoError(t, repo.Register(ctx, acc))

	got, err := repo.Authenticate(ctx, ana, "pw")
	require.NoError(t, err)
	assert.Equal(t, acc, got)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	repo := newTestAccountRepo(kv)

	require.NoError(t, repo.Register(ctx, models.Account{Username: "ana", Email: ana, Password: "pw"}))
	err := repo.Register(ctx, models.Account{Username: "other", Email: ana, Password: "x"})
	require.ErrorIs(t, err, ErrAccountAlreadyExists)

	raw, _, _ := kv.Get(ctx, KeyUsers)
	assert.JSONEq(t, `[{"username":"ana","email":"ana@example.com","password":"pw"}]`, raw)
}

func TestAccountRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newTestAccountRepo(NewMemoryStore())

	require.NoError(t, repo.Register(ctx, models.Account{Email: ana, Password: "pw"}))
	require.NoError(t, repo.Register(ctx, models.Account{Email: "ANA@example.com", Password: "pw"}))

	_, err := repo.Authenticate(ctx, "Ana@Example.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountRepository_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	repo := newTestAccountRepo(NewMemoryStore())
	require.NoError(t, repo.Register(ctx, models.Account{Username: "ana", Email: ana, Password: "pw"}))

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", ana, "nope"},
		{"unknown email", bob, "pw"},
		{"empty", "", ""},
		{"swapped", "pw", ana},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Authenticate(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAccountRepository_NoAccountsYet(t *testing.T) {
	_, err := newTestAccountRepo(NewMemoryStore()).Authenticate(context.Background(), ana, "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountRepository_CorruptUsers(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(ctx, KeyUsers, `[{"email":`))
	repo := newTestAccountRepo(kv)

	_, err := repo.Authenticate(ctx, ana, "pw")
	require.ErrorIs(t, err, ErrCorruptStore)

	require.ErrorIs(t, repo.Register(ctx, models.Account{Email: ana}), ErrCorruptStore)
}

func TestAccountRepository_StorageError(t *testing.T) {
	repo := newTestAccountRepo(failingStore{err: ErrStorageUnavailable})
	ctx := context.Background()

	require.ErrorIs(t, repo.Register(ctx, models.Account{Email: ana}), ErrStorageUnavailable)
	_, err := repo.Authenticate(ctx, ana, "pw")
	require.ErrorIs(t, err, ErrStorageUnavailable)
}
