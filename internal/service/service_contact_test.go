package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/internal/mock"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
	"github.com/MKhiriev/go-birthday-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var anaSession = models.Session{Username: "ana", Email: "ana@mail.com", StartedAt: testNow}

func newTestContactSvc(t *testing.T, today time.Time) (ContactService, *mock.MockContactRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	contacts := mock.NewMockContactRepository(ctrl)
	svc := NewContactService(contacts, validators.NewInputValidator(), birthday.FixedClock(today), logger.Nop())

	return svc, contacts
}

func contactBorn(name, date string) models.Contact {
	return models.Contact{
		Name:     name,
		Surname:  "Doe",
		Email:    name + "@mail.com",
		Phone:    "1234-5678",
		Birthday: date,
	}
}

func TestContactService_RequiresSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestContactSvc(t, testNow)

	_, err := svc.List(ctx, models.Session{})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = svc.Get(ctx, models.Session{}, 0)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	err = svc.Add(ctx, models.Session{}, contactBorn("Bob", "01/01/1990"))
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = svc.Remove(ctx, models.Session{}, 0)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	svc, contacts := newTestContactSvc(t, today)

	stored := []models.Contact{
		contactBorn("Today", "10/05/1990"),
		contactBorn("Past", "01/05/1985"),
		contactBorn("Soon", "20/05/2000"),
	}
	contacts.EXPECT().ListContacts(gomock.Any(), "ana@mail.com").Return(stored, nil)

	entries, err := svc.List(ctx, anaSession)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 0, entries[0].Position)
	assert.Equal(t, birthday.Today, entries[0].Category)
	assert.Equal(t, 0, entries[0].OffsetDays)

	assert.Equal(t, birthday.Past, entries[1].Category)
	assert.Equal(t, -9, entries[1].OffsetDays)

	assert.Equal(t, 2, entries[2].Position)
	assert.Equal(t, birthday.Upcoming, entries[2].Category)
	assert.Equal(t, 10, entries[2].OffsetDays)
	assert.Equal(t, stored[2], entries[2].Contact)
}

func TestContactService_ListEmpty(t *testing.T) {
	svc, contacts := newTestContactSvc(t, testNow)
	contacts.EXPECT().ListContacts(gomock.Any(), "ana@mail.com").Return([]models.Contact{}, nil)

	entries, err := svc.List(context.Background(), anaSession)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestContactService_ListCorruptBirthday(t *testing.T) {
	svc, contacts := newTestContactSvc(t, testNow)
	contacts.EXPECT().ListContacts(gomock.Any(), "ana@mail.com").
		Return([]models.Contact{contactBorn("Bad", "31-12-1990")}, nil)

	_, err := svc.List(context.Background(), anaSession)

	assert.ErrorIs(t, err, store.ErrCorruptStore)
	var corrupt *store.CorruptStoreError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, store.ContactsKey("ana@mail.com"), corrupt.Key)
}

func TestContactService_ListStorageError(t *testing.T) {
	svc, contacts := newTestContactSvc(t, testNow)
	contacts.EXPECT().ListContacts(gomock.Any(), gomock.Any()).Return(nil, store.ErrStorageTimeout)

	_, err := svc.List(context.Background(), anaSession)
	assert.ErrorIs(t, err, store.ErrStorageTimeout)
}

func TestContactService_Get(t *testing.T) {
	ctx := context.Background()
	stored := []models.Contact{contactBorn("Ana", "01/01/1990"), contactBorn("Bob", "02/02/1990")}

	t.Run("in range", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t, testNow)
		contacts.EXPECT().ListContacts(gomock.Any(), "ana@mail.com").Return(stored, nil)

		entry, err := svc.Get(ctx, anaSession, 1)
		require.NoError(t, err)
		assert.Equal(t, "Bob", entry.Contact.Name)
		assert.Equal(t, 1, entry.Position)
	})

	for _, index := range []int{-1, 2} {
		svc, contacts := newTestContactSvc(t, testNow)
		contacts.EXPECT().ListContacts(gomock.Any(), "ana@mail.com").Return(stored, nil)

		_, err := svc.Get(ctx, anaSession, index)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
	}
}

func TestContactService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("valid contact", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t, testNow)
		c := contactBorn("Bob", "15/08/1992")
		contacts.EXPECT().AddContact(gomock.Any(), "ana@mail.com", c).Return(nil)

		require.NoError(t, svc.Add(ctx, anaSession, c))
	})

	tests := []struct {
		name    string
		mutate  func(c *models.Contact)
		wantErr error
	}{
		{name: "digit in name", mutate: func(c *models.Contact) { c.Name = "B0b" }, wantErr: validators.ErrInvalidName},
		{name: "bad phone", mutate: func(c *models.Contact) { c.Phone = "12345678" }, wantErr: validators.ErrInvalidPhone},
		{name: "no birthday", mutate: func(c *models.Contact) { c.Birthday = "" }, wantErr: validators.ErrMissingBirthday},
		{name: "impossible date", mutate: func(c *models.Contact) { c.Birthday = "31/02/1990" }, wantErr: validators.ErrMalformedBirthday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestContactSvc(t, testNow)
			c := contactBorn("Bob", "15/08/1992")
			tt.mutate(&c)

			err := svc.Add(ctx, anaSession, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContactService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("returns annotated remainder", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
		contacts.EXPECT().RemoveContact(gomock.Any(), "ana@mail.com", 0).
			Return([]models.Contact{contactBorn("Bob", "01/01/1990")}, nil)

		entries, err := svc.Remove(ctx, anaSession, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Bob", entries[0].Contact.Name)
		assert.Equal(t, 0, entries[0].Position)
		assert.Equal(t, birthday.Today, entries[0].Category)
	})

	t.Run("out of range", func(t *testing.T) {
		svc, contacts := newTestContactSvc(t, testNow)
		contacts.EXPECT().RemoveContact(gomock.Any(), "ana@mail.com", 5).Return(nil, store.ErrContactNotFound)

		_, err := svc.Remove(ctx, anaSession, 5)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
	})
}
