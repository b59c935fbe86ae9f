package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/internal/service"
	"github.com/MKhiriev/go-birthday-keeper/internal/tui"
)

type App struct {
	accounts service.AccountService
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	return &App{
		accounts: services.AccountService,
		ui:       ui,
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Str("user", session.Email).Msg("session started")

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.accounts.Logout(ctx, session); err != nil {
			a.logger.Warn().Err(err).Msg("logout")
		}
	}
}
