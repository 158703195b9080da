package client

import (
	"context"
	"fmt"

	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/service"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

// App runs the interactive session: the mirror worker in the background and
// the UI in the foreground.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client: services and ui are required")
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run blocks until the UI returns. Pending mirror writes are finished and
// the vault is locked before Run returns.
func (a *App) Run(ctx context.Context) error {
	workerCtx, cancel := context.WithCancel(ctx)
	a.services.Workers.Run(workerCtx)

	err := a.ui.Run(ctx)

	cancel()
	a.services.Workers.Wait()
	a.services.Vault.Lock()

	if err != nil {
		return fmt.Errorf("client run: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
