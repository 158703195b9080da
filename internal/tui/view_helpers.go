package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akgarhwal/vault/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func mask(v string) string {
	if v == "" {
		return "-"
	}
	return strings.Repeat("•", min(utf8.RuneCountInString(v), 12))
}

func itemIcon(t models.ItemType) string {
	switch t {
	case models.ItemTypePassword:
		return "[P]"
	case models.ItemTypeCard:
		return "[C]"
	default:
		return "[?]"
	}
}

func syncBadge(status models.SyncStatus, link models.SyncLink, linked bool) string {
	switch status {
	case models.SyncStatusConnected:
		return fmt.Sprintf("sync: %s ✓", link.Label)
	case models.SyncStatusDisconnected:
		return fmt.Sprintf("sync: %s ✗ (s to reconnect)", link.Label)
	default:
		if linked {
			return fmt.Sprintf("sync: %s ?", link.Label)
		}
		return "sync: off"
	}
}
