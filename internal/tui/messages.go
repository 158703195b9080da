package tui

import "github.com/akgarhwal/vault/models"

type vaultStateMsg struct {
	state models.VaultState
	err   error
}

type unlockDoneMsg struct {
	err error
}

// lockedMsg is sent from the auto-lock goroutine.
type lockedMsg struct{}

type itemSavedMsg struct {
	item models.DecryptedItem
	err  error
}

type itemDeletedMsg struct {
	err error
}

type syncDoneMsg struct {
	action syncAction
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type importPreviewMsg struct {
	doc     models.ExportDocument
	preview models.ImportPreview
	err     error
}

type importDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct {
	seq int
}

type clearClipboardMsg struct {
	value string
}
