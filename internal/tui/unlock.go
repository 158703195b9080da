package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// unlockModel is the master password screen. In create mode it asks for
// the password twice.
type unlockModel struct {
	create bool
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newUnlockModel(create bool) unlockModel {
	inputs := []textinput.Model{newPasswordInput("master password")}
	if create {
		inputs = append(inputs, newPasswordInput("repeat password"))
	}
	inputs[0].Focus()

	return unlockModel{create: create, inputs: inputs}
}

func (m unlockModel) password() string {
	return m.inputs[0].Value()
}

// validate checks the form before any key derivation starts.
func (m unlockModel) validate() string {
	if m.password() == "" {
		return "Master password is required"
	}
	if m.create && m.inputs[0].Value() != m.inputs[1].Value() {
		return "Passwords do not match"
	}
	return ""
}

func (m unlockModel) update(msg tea.Msg) (unlockModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && len(m.inputs) > 1 {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// clear wipes typed passwords from the widgets.
func (m *unlockModel) clear() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

func (m unlockModel) View(busy bool) string {
	var b strings.Builder
	title := "UNLOCK VAULT"
	if m.create {
		title = "CREATE VAULT"
		b.WriteString("Choose a master password. It cannot be recovered.\n\n")
	}

	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if m.create {
		b.WriteString("Repeat   │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if busy {
		b.WriteString("\nDeriving key...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hot := "enter: unlock"
	if m.create {
		hot = "tab: next field │ enter: create"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hot)
}
