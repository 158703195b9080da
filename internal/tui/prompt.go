package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptPurpose int

const (
	promptLink promptPurpose = iota
	promptExport
	promptImport
)

// promptModel asks for a single path or URL.
type promptModel struct {
	purpose promptPurpose
	title   string
	hint    string
	input   textinput.Model
}

func newPromptModel(purpose promptPurpose, value string) promptModel {
	in := textinput.New()
	in.Width = 60
	in.CharLimit = 1024
	in.SetValue(value)
	in.Focus()

	m := promptModel{purpose: purpose, input: in}
	switch purpose {
	case promptLink:
		m.title = "LINK MIRROR FILE"
		m.hint = "Local path or http(s) URL of a WebDAV file.\nHTTP credentials are read from the OS keyring (see `vault link --help`)."
	case promptExport:
		m.title = "EXPORT VAULT"
		m.hint = "File to write. Items stay encrypted."
	case promptImport:
		m.title = "IMPORT VAULT"
		m.hint = "Export file to restore. The local vault will be replaced."
	}
	return m
}

func (m promptModel) value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m promptModel) update(msg tea.Msg) (promptModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View(busy bool) string {
	body := m.hint + "\n\n[" + m.input.View() + "]"
	if busy {
		body += "\n\nWorking..."
	}
	return renderPage(m.title, body, "esc: cancel │ enter: confirm")
}
