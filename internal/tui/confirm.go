package tui

import "github.com/akgarhwal/vault/models"

type confirmPurpose int

const (
	confirmDelete confirmPurpose = iota
	confirmImport
	confirmResetFirst
	confirmResetSecond
	confirmRelink
)

type confirmModel struct {
	purpose confirmPurpose
	message string
	itemID  string
	doc     models.ExportDocument
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\ny yes    n no")
}
