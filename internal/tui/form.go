package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akgarhwal/vault/models"
)

var (
	passwordFields = []string{"Name", "Username", "Password", "URL"}
	cardFields     = []string{"Name", "Holder", "Number", "Expiry", "CVV"}
)

// passwordField is the index of the password input of a password item.
const passwordField = 2

type formModel struct {
	itemID string
	typ    models.ItemType
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newFormModel(item *models.DecryptedItem, typ models.ItemType) formModel {
	m := formModel{typ: typ}
	if item != nil {
		m.itemID = item.ID
		m.typ = item.Type
	}
	m.build()

	if item == nil {
		return m
	}

	values := []string{item.Name, item.Username, item.Password, item.URL}
	if item.Type == models.ItemTypeCard {
		values = []string{item.Name, item.CardHolder, item.CardNumber, item.CardExpiry, item.CardCVV}
	}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
	return m
}

func (m *formModel) build() {
	m.labels = passwordFields
	if m.typ == models.ItemTypeCard {
		m.labels = cardFields
	}

	m.inputs = make([]textinput.Model, len(m.labels))
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 40
		m.inputs[i].CharLimit = 512
	}
	if m.typ == models.ItemTypeCard {
		m.inputs[3].Placeholder = "MM/YY"
		m.inputs[4].EchoMode = textinput.EchoPassword
		m.inputs[4].EchoCharacter = '*'
	} else {
		m.inputs[passwordField].EchoMode = textinput.EchoPassword
		m.inputs[passwordField].EchoCharacter = '*'
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m formModel) editing() bool {
	return m.itemID != ""
}

// toggleType switches a new item between password and card.
func (m *formModel) toggleType() {
	if m.editing() {
		return
	}
	name := m.inputs[0].Value()
	if m.typ == models.ItemTypeCard {
		m.typ = models.ItemTypePassword
	} else {
		m.typ = models.ItemTypeCard
	}
	m.build()
	m.inputs[0].SetValue(name)
}

func (m *formModel) setGenerated(password string) bool {
	if m.typ != models.ItemTypePassword {
		return false
	}
	m.inputs[passwordField].SetValue(password)
	return true
}

func (m formModel) lastField() bool {
	return m.focus == len(m.inputs)-1
}

func (m formModel) moveFocus(delta int) (formModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) payload() models.ItemPayload {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	if m.typ == models.ItemTypeCard {
		return models.NewCardPayload(v(0), v(1), v(2), v(3), v(4))
	}
	// passwords keep surrounding spaces
	return models.NewPasswordPayload(v(0), v(1), m.inputs[passwordField].Value(), v(3))
}

func (m formModel) View(busy bool) string {
	title := "NEW " + strings.ToUpper(string(m.typ))
	if m.editing() {
		title = "EDIT: " + m.inputs[0].Value()
	}

	var b strings.Builder
	for i, label := range m.labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 9-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	if busy {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hot := "esc: cancel │ tab: next field │ ctrl+s: save"
	if !m.editing() {
		hot += " │ ctrl+t: password/card"
	}
	if m.typ == models.ItemTypePassword {
		hot += " │ ctrl+g: generate"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hot)
}
