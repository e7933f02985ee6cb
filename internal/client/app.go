package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

type App struct {
	services  *service.Services
	tui       *tui.TUI
	sweeper   *workers.ClipboardSweeper
	workers   *workers.Workers
	log       *logger.Logger
	buildInfo models.AppBuildInfo
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	services := service.NewServices(cfg, log)

	sweeper := workers.NewClipboardSweeper(cfg.Workers.ClipboardTTL, log.GetChildLogger())

	ui, err := tui.New(services, sweeper, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		services:  services,
		tui:       ui,
		sweeper:   sweeper,
		workers:   workers.New(sweeper),
		log:       log,
		buildInfo: buildInfo,
	}, nil
}

// Run prepares the key material, starts background workers, and hands the
// terminal to the TUI until the user exits.
func (a *App) Run() error {
	if err := a.services.VaultService.EnsureKey(); err != nil {
		return fmt.Errorf("prepare key material: %w", err)
	}

	a.workers.Run()
	defer a.sweeper.Stop()

	if err := a.tui.Run(a.buildInfo); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.log.Info().Msg("user quit")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
