package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-share/internal/config"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/service"
	"github.com/MKhiriev/go-note-share/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	cfg      config.ClientNotifications
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientNotifications, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client app: services and tui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run implements [Client]. It restores the persisted session, falls back to
// the interactive login flow when nothing restores, then runs the notes loop
// with the background notifications job ticking alongside. Logging out
// returns to the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	a.services.SessionService.Init(ctx)

	if !a.services.SessionService.IsAuthenticated() {
		if err := a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
	}

	a.services.RefreshJob.Start(ctx, a.cfg.RefreshInterval)

	logout, err := a.tui.MainLoop(ctx)
	a.services.RefreshJob.Stop()
	if err != nil {
		return err
	}
	if logout {
		a.services.SessionService.Logout()
		a.logger.Info().Msg("user logged out, returning to login flow")
		return a.Run()
	}

	return nil
}
