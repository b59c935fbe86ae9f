package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/internal/service"
	"github.com/MKhiriev/go-birthday-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, logger: log}, nil
}

// LoginFlow shows the menu with the sign-in and sign-up pages and returns
// the session of the user who logged in.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	lastUser, err := t.services.AccountService.LastUser(ctx)
	if err != nil {
		// prefill is cosmetic
		t.logger.Warn().Err(err).Msg("could not read last user")
	}

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AccountService, lastUser),
		pageRegister: NewRegisterModel(ctx, t.services.AccountService),
	}

	root := NewRootModel(pages, pageMenu, t.services.AppInfoService.GetBuildInfo(ctx))
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.session.Valid() {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the contacts screen for session. logout reports whether the
// user asked to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newContactsModel(ctx, t.services.ContactService, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(contactsModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
