package tui

import (
	"context"
	"errors"

	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/service"
	"github.com/Anjaratiana11/restaurant-mobile/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("quitté par l'utilisateur")

type TUI struct {
	services *service.ClientServices
	userID   int64
}

func New(services *service.ClientServices, userID int64, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, userID: userID}, nil
}

// LoginFlow runs the auth pages (menu, login, signup) until the user has a
// session or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"login":  NewLoginModel(ctx, t.services.AuthService),
		"signup": NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the ordering screens (dish list, dish detail, order) until the
// user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
