package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-birthday-keeper/internal/app"
	"github.com/MKhiriev/go-birthday-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() models.Contact {
	return models.Contact{
		Name:     "Ana",
		Surname:  "Lopez",
		Email:    "ana@example.com",
		Phone:    "1234-5678",
		Birthday: "15/03/1990",
	}
}

func validForm() models.RegistrationForm {
	return models.RegistrationForm{
		Username:        "ana",
		Email:           "ana@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestNewInputValidator(t *testing.T) {
	require.NotNil(t, NewInputValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("contact value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validContact()))
	})

	t.Run("contact pointer", func(t *testing.T) {
		c := validContact()
		require.NoError(t, v.Validate(ctx, &c))
	})

	t.Run("form value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validForm()))
	})

	t.Run("form pointer", func(t *testing.T) {
		f := validForm()
		require.NoError(t, v.Validate(ctx, &f))
	})
}

func TestValidate_ContactRules(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(c *models.Contact)
		wantErr error
		field   string
		message string
	}{
		{
			name:    "name with digit",
			mutate:  func(c *models.Contact) { c.Name = "Ana1" },
			wantErr: ErrInvalidName, field: FieldName, message: app.MsgInvalidName,
		},
		{
			name:    "empty name",
			mutate:  func(c *models.Contact) { c.Name = "" },
			wantErr: ErrInvalidName, field: FieldName, message: app.MsgInvalidName,
		},
		{
			name:    "surname with space",
			mutate:  func(c *models.Contact) { c.Surname = "de Lopez" },
			wantErr: ErrInvalidSurname, field: FieldSurname, message: app.MsgInvalidSurname,
		},
		{
			name:    "bad email",
			mutate:  func(c *models.Contact) { c.Email = "ana.example.com" },
			wantErr: ErrInvalidEmail, field: FieldEmail, message: app.MsgInvalidEmail,
		},
		{
			name:    "bad phone",
			mutate:  func(c *models.Contact) { c.Phone = "12345678" },
			wantErr: ErrInvalidPhone, field: FieldPhone, message: app.MsgInvalidPhone,
		},
		{
			name:    "missing birthday",
			mutate:  func(c *models.Contact) { c.Birthday = "" },
			wantErr: ErrMissingBirthday, field: FieldBirthday, message: app.MsgMissingBirthday,
		},
		{
			name:    "malformed birthday",
			mutate:  func(c *models.Contact) { c.Birthday = "31/02/1990" },
			wantErr: ErrMalformedBirthday, field: FieldBirthday, message: app.MsgMalformedBirthday,
		},
		{
			name:    "signed birthday year",
			mutate:  func(c *models.Contact) { c.Birthday = "01/01/-200" },
			wantErr: ErrMalformedBirthday, field: FieldBirthday, message: app.MsgMalformedBirthday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.mutate(&c)

			err := v.Validate(ctx, c)
			require.ErrorIs(t, err, tt.wantErr)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
		})
	}
}

func TestValidate_ContactFixedOrder(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	c := models.Contact{}
	require.ErrorIs(t, v.Validate(ctx, c), ErrInvalidName)

	c.Name = "Ana"
	require.ErrorIs(t, v.Validate(ctx, c), ErrInvalidSurname)

	c.Surname = "Lopez"
	require.ErrorIs(t, v.Validate(ctx, c), ErrInvalidEmail)

	c.Email = "ana@example.com"
	require.ErrorIs(t, v.Validate(ctx, c), ErrInvalidPhone)

	c.Phone = "1234-5678"
	require.ErrorIs(t, v.Validate(ctx, c), ErrMissingBirthday)

	c.Birthday = "15/03/1990"
	require.NoError(t, v.Validate(ctx, c))
}

func TestValidate_ContactPartialFields(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	c := validContact()
	c.Name = "bad name"

	require.NoError(t, v.Validate(ctx, c, FieldPhone, FieldEmail))
	require.ErrorIs(t, v.Validate(ctx, c, FieldName), ErrInvalidName)
}

func TestValidate_Registration(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(f *models.RegistrationForm)
		wantErr error
		message string
	}{
		{
			name:    "missing username",
			mutate:  func(f *models.RegistrationForm) { f.Username = "" },
			wantErr: ErrMissingFields, message: app.MsgMissingFields,
		},
		{
			name:    "missing confirmation wins over bad email",
			mutate:  func(f *models.RegistrationForm) { f.Email = "nope"; f.ConfirmPassword = "" },
			wantErr: ErrMissingFields, message: app.MsgMissingFields,
		},
		{
			name:    "bad email",
			mutate:  func(f *models.RegistrationForm) { f.Email = "nope" },
			wantErr: ErrInvalidEmail, message: app.MsgInvalidEmail,
		},
		{
			name:    "passwords differ",
			mutate:  func(f *models.RegistrationForm) { f.ConfirmPassword = "other" },
			wantErr: ErrPasswordsDontMatch, message: app.MsgPasswordsDontMatch,
		},
		{
			name:    "bad email reported before mismatch",
			mutate:  func(f *models.RegistrationForm) { f.Email = "nope"; f.ConfirmPassword = "other" },
			wantErr: ErrInvalidEmail, message: app.MsgInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			err := v.Validate(ctx, f)
			require.ErrorIs(t, err, tt.wantErr)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.message, vErr.Message)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: FieldPhone, Message: app.MsgInvalidPhone, Err: ErrInvalidPhone}
	assert.Equal(t, "Phone: invalid phone", err.Error())
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
