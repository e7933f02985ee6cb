// Package tui implements the interactive terminal interface of
// go-pass-vault on top of bubbletea.
//
// The interface is a small page router ([RootModel]) over three pages:
// the main menu, the password generator, and the stored-records browser.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ErrUserQuit is returned by Run when the user closes the application with
// ctrl+c instead of finishing a flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	sweeper  *workers.ClipboardSweeper
	log      *logger.Logger
}

func New(services *service.Services, sweeper *workers.ClipboardSweeper, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services must not be nil")
	}

	return &TUI{services: services, sweeper: sweeper, log: log}, nil
}

// Run starts the interactive session and blocks until the user exits.
func (t *TUI) Run(buildInfo models.AppBuildInfo) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"generate": NewGenerateModel(t.services.GeneratorService, t.services.StrengthService, t.services.VaultService, t.sweeper),
		"records":  NewRecordsModel(t.services.VaultService, t.services.StrengthService, t.sweeper),
	}

	root := NewRootModel(pages, "menu", buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
