// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface of the vault
// on top of bubbletea.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/models"
)

type TUI struct {
	services *service.ClientServices
	opener   adapter.CapabilityOpener
	info     models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, opener adapter.CapabilityOpener, info models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, fmt.Errorf("tui: nil services")
	}
	if opener == nil {
		return nil, fmt.Errorf("tui: nil capability opener")
	}
	return &TUI{services: services, opener: opener, info: info, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled. The vault is locked
// on return.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(
		newAppModel(ctx, t.services, t.opener, t.info, t.logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	t.services.Vault.SetOnAutoLock(func() {
		p.Send(lockedMsg{})
	})
	defer t.services.Vault.SetOnAutoLock(nil)
	defer t.services.Vault.Lock()

	_, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
