package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/models"
)

const (
	statusTTL    = 4 * time.Second
	clipboardTTL = 30 * time.Second
)

type syncAction int

const (
	syncStartup syncAction = iota
	syncReconnect
	syncLink
	syncUnlink
)

// yesConfirmer is used once the TUI has already asked the user.
var yesConfirmer = service.ConfirmFunc(func(context.Context, string) bool { return true })

func cmdLoadState(ctx context.Context, vault service.VaultService) tea.Cmd {
	return func() tea.Msg {
		state, err := vault.State(ctx)
		return vaultStateMsg{state: state, err: err}
	}
}

func cmdUnlock(ctx context.Context, vault service.VaultService, create bool, password string) tea.Cmd {
	return func() tea.Msg {
		if create {
			return unlockDoneMsg{err: vault.Create(ctx, password)}
		}
		return unlockDoneMsg{err: vault.Unlock(ctx, password)}
	}
}

func cmdSaveItem(ctx context.Context, items service.ItemService, id string, payload models.ItemPayload) tea.Cmd {
	return func() tea.Msg {
		if id == "" {
			item, err := items.Add(ctx, payload)
			return itemSavedMsg{item: item, err: err}
		}
		item, err := items.Update(ctx, id, payload)
		return itemSavedMsg{item: item, err: err}
	}
}

func cmdDeleteItem(ctx context.Context, items service.ItemService, id string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{err: items.Delete(ctx, id)}
	}
}

func cmdReconnect(ctx context.Context, sync service.SyncService, action syncAction) tea.Cmd {
	return func() tea.Msg {
		_, err := sync.Reconnect(ctx)
		return syncDoneMsg{action: action, err: err}
	}
}

func cmdLink(ctx context.Context, sync service.SyncService, opener adapter.CapabilityOpener, target string) tea.Cmd {
	return func() tea.Msg {
		capability, err := opener.Open(models.SyncLink{Kind: adapter.KindForTarget(target), Target: target})
		if err != nil {
			return syncDoneMsg{action: syncLink, err: err}
		}
		return syncDoneMsg{action: syncLink, err: sync.LinkNew(ctx, capability, "")}
	}
}

func cmdUnlink(ctx context.Context, sync service.SyncService) tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{action: syncUnlink, err: sync.Unlink(ctx)}
	}
}

func cmdExport(ctx context.Context, transfer service.TransferService, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := transfer.Export(ctx)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		data, err := transfer.MarshalDocument(doc)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err = os.WriteFile(path, data, 0o600); err != nil {
			return exportDoneMsg{err: fmt.Errorf("write %s: %w", path, err)}
		}
		return exportDoneMsg{path: path}
	}
}

func cmdPreviewImport(ctx context.Context, transfer service.TransferService, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return importPreviewMsg{err: err}
		}
		doc, err := transfer.ParseDocument(data)
		if err != nil {
			return importPreviewMsg{err: err}
		}
		preview, err := transfer.Preview(ctx, doc)
		return importPreviewMsg{doc: doc, preview: preview, err: err}
	}
}

func cmdImport(ctx context.Context, transfer service.TransferService, doc models.ExportDocument) tea.Cmd {
	return func() tea.Msg {
		_, err := transfer.Import(ctx, doc, yesConfirmer)
		return importDoneMsg{err: err}
	}
}

func cmdReset(ctx context.Context, vault service.VaultService) tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: vault.Reset(ctx, yesConfirmer)}
	}
}

// cmdCopy puts value on the clipboard and schedules its removal.
func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(value)}
	}
}

func cmdClearClipboardLater(value string) tea.Cmd {
	return tea.Tick(clipboardTTL, func(time.Time) tea.Msg {
		return clearClipboardMsg{value: value}
	})
}

// clearClipboard empties the clipboard only if it still holds value.
func clearClipboard(value string) {
	current, err := clipboard.ReadAll()
	if err == nil && current == value {
		_ = clipboard.WriteAll("")
	}
}

func cmdGenerate() (string, error) {
	return crypto.GeneratePassword()
}

func cmdClearStatusLater(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
