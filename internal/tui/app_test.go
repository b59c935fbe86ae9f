package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-birthday-keeper/internal/app"
	"github.com/MKhiriev/go-birthday-keeper/internal/mock"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
	"github.com/MKhiriev/go-birthday-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T, lastUser string) (RootModel, *mock.MockAccountService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(context.Background(), accounts, lastUser),
		pageRegister: NewRegisterModel(context.Background(), accounts),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("v1.0.0", "", "abc")), accounts
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	updated, cmd := r.Update(msg)
	return updated.(RootModel), cmd
}

func TestRootModel_MenuNavigation(t *testing.T) {
	r, _ := newTestRoot(t, "")
	assert.Contains(t, r.View(), "Log in")

	r, cmd := update(t, r, keyType(tea.KeyDown))
	assert.Nil(t, cmd)
	r, cmd = update(t, r, keyType(tea.KeyEnter))
	assert.Equal(t, NavigateTo{Page: pageRegister}, run(t, cmd))

	r, _ = update(t, r, NavigateTo{Page: pageRegister})
	assert.Contains(t, r.View(), "SIGN UP")

	r, cmd = update(t, r, keyType(tea.KeyEsc))
	assert.Equal(t, NavigateTo{Page: pageMenu}, run(t, cmd))

	r, _ = update(t, r, NavigateTo{Page: "nowhere"})
	assert.Contains(t, r.View(), "SIGN UP")
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	r, _ := newTestRoot(t, "")

	r, _ = update(t, r, keyRunes("v"))
	assert.Contains(t, r.View(), "v1.0.0")
	assert.Contains(t, r.View(), "N/A")

	r, _ = update(t, r, keyType(tea.KeyEsc))
	assert.Contains(t, r.View(), "BIRTHDAY KEEPER")
}

func TestRootModel_Quit(t *testing.T) {
	r, _ := newTestRoot(t, "")

	r, cmd := update(t, r, keyType(tea.KeyCtrlC))
	assert.True(t, r.quitByUser)
	assert.Equal(t, tea.Quit(), run(t, cmd))
}

func TestRootModel_SuccessfulLoginEndsFlow(t *testing.T) {
	r, accounts := newTestRoot(t, "ana@mail.com")
	r, _ = update(t, r, NavigateTo{Page: pageLogin})

	login := r.current.(*LoginModel)
	assert.Equal(t, "ana@mail.com", login.form.value(loginEmail))
	assert.Equal(t, loginPassword, login.form.focus)

	login.form.setValue(loginPassword, "secret")
	session := models.Session{Username: "ana", Email: "ana@mail.com"}
	accounts.EXPECT().Authenticate(gomock.Any(), "ana@mail.com", "secret").Return(session, nil)

	r, cmd := update(t, r, keyType(tea.KeyEnter))
	r, cmd = update(t, r, run(t, cmd))

	assert.Equal(t, session, r.session)
	assert.False(t, r.quitByUser)
	assert.Equal(t, tea.Quit(), run(t, cmd))
}

func TestLoginModel_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	m := NewLoginModel(context.Background(), accounts, "")

	_, cmd := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgMissingFields, m.errMsg)

	m.form.setValue(loginEmail, "ana@mail.com")
	m.form.setValue(loginPassword, "wrong")
	accounts.EXPECT().Authenticate(gomock.Any(), "ana@mail.com", "wrong").
		Return(models.Session{}, store.ErrInvalidCredentials)

	_, cmd = m.Update(keyType(tea.KeyEnter))
	assert.True(t, m.submitting)
	m.Update(run(t, cmd))

	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgInvalidCredentials, m.errMsg)
	assert.Empty(t, m.form.rawValue(loginPassword))
	assert.Contains(t, m.View(), app.MsgInvalidCredentials)
}

func TestRegisterModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	m := NewRegisterModel(context.Background(), accounts)

	form := models.RegistrationForm{Username: "ana", Email: "ana@mail.com", Password: "pw", ConfirmPassword: "px"}
	m.form.setValue(registerUsername, form.Username)
	m.form.setValue(registerEmail, form.Email)
	m.form.setValue(registerPassword, form.Password)
	m.form.setValue(registerConfirm, form.ConfirmPassword)

	accounts.EXPECT().Register(gomock.Any(), form).Return(&validators.ValidationError{
		Field:   validators.FieldConfirmPassword,
		Message: app.MsgPasswordsDontMatch,
		Err:     validators.ErrPasswordsDontMatch,
	})

	_, cmd := m.Update(keyType(tea.KeyEnter))
	m.Update(run(t, cmd))
	assert.Equal(t, app.MsgPasswordsDontMatch, m.errMsg)
	assert.Equal(t, registerConfirm, m.form.focus)

	m.form.setValue(registerConfirm, "pw")
	form.ConfirmPassword = "pw"
	accounts.EXPECT().Register(gomock.Any(), form).Return(nil)

	_, cmd = m.Update(keyType(tea.KeyEnter))
	_, cmd = m.Update(run(t, cmd))

	nav, ok := run(t, cmd).(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.Equal(t, RegisterSuccessNotice{Username: "ana"}, nav.Payload)
	assert.Empty(t, m.form.value(registerUsername))

	menu := NewMenuModel()
	menu.Update(nav.Payload)
	assert.Contains(t, menu.View(), app.MsgRegistered)
}
