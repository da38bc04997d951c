package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/service"
	"github.com/Anjaratiana11/restaurant-mobile/internal/tui"
)

// App drives the client lifecycle: restore or establish a session, run the
// ordering screens, and loop back to the auth flow on logout.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("services are required")
	}
	if ui == nil {
		return nil, fmt.Errorf("ui is required")
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	token, err := a.services.AuthService.Token(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if token == "" {
		if _, err = a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	} else {
		a.logger.Info().Msg("session restored from local store")
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		return a.Run()
	}

	return nil
}
