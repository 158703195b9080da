package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/models"
)

var listTabs = []struct {
	label string
	typ   models.ItemType
}{
	{label: "All", typ: "all"},
	{label: "Passwords", typ: models.ItemTypePassword},
	{label: "Cards", typ: models.ItemTypeCard},
}

type listModel struct {
	items     []models.DecryptedItem
	idx       int
	tab       int
	search    textinput.Model
	searching bool
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search by name"
	search.Prompt = "/ "
	search.Width = 30
	return listModel{search: search}
}

func (m listModel) filter() service.ItemFilter {
	return service.ItemFilter{Type: listTabs[m.tab].typ, Query: m.search.Value()}
}

func (m *listModel) setItems(items []models.DecryptedItem) {
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.idx = (m.idx + delta + len(m.items)) % len(m.items)
}

func (m *listModel) nextTab(delta int) {
	m.tab = (m.tab + delta + len(listTabs)) % len(listTabs)
	m.idx = 0
}

func (m listModel) current() (models.DecryptedItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.DecryptedItem{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) View(badge string) string {
	var b strings.Builder

	for i, t := range listTabs {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.tab {
			b.WriteString(activeTabStyle.Render(t.label))
		} else {
			b.WriteString(tabStyle.Render(t.label))
		}
	}
	b.WriteString("    ")
	b.WriteString(helpStyle.Render(badge))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString("No items\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s %-28s %s\n", cursor, itemIcon(item.Type), fitText(item.Name, 28), fitText(item.Login(), 24))
	}

	hot := "n: new │ enter: open │ e: edit │ d: delete │ c/u: copy secret/login │ /: search │ tab: category\n" +
		"g: generate │ L: link │ s: reconnect │ U: unlink │ x: export │ i: import │ ctrl+l: lock │ R: reset │ q: quit"
	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hot)
}
