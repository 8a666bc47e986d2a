package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-area-keeper/internal/config"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/service"
	"github.com/MKhiriev/go-area-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, tui: ui, workers: workers, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}
	a.logger.Debug().Int64("user_id", user.UserID).Msg("session established")

	// replay whatever was left pending from the previous session
	if err = a.services.AreaService.ReconcileAll(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial reconciliation failed")
	}

	a.services.ReconcileJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.ReconcileJob.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}
