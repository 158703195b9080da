package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akgarhwal/vault/models"
)

type detailModel struct {
	item   models.DecryptedItem
	reveal bool
}

func (m detailModel) View() string {
	it := m.item
	secret := func(v string) string {
		if m.reveal {
			return valueOrDash(v)
		}
		return mask(v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Type     │ %s\n", it.Type)
	fmt.Fprintf(&b, "Name     │ %s\n", it.Name)
	switch it.Type {
	case models.ItemTypeCard:
		fmt.Fprintf(&b, "Holder   │ %s\n", valueOrDash(it.CardHolder))
		fmt.Fprintf(&b, "Number   │ %s\n", secret(it.CardNumber))
		fmt.Fprintf(&b, "Expiry   │ %s\n", valueOrDash(it.CardExpiry))
		fmt.Fprintf(&b, "CVV      │ %s\n", secret(it.CardCVV))
	default:
		fmt.Fprintf(&b, "Username │ %s\n", valueOrDash(it.Username))
		fmt.Fprintf(&b, "Password │ %s\n", secret(it.Password))
		fmt.Fprintf(&b, "URL      │ %s\n", valueOrDash(it.URL))
	}
	if it.UpdatedAt > 0 {
		fmt.Fprintf(&b, "Updated  │ %s\n", time.UnixMilli(it.UpdatedAt).Format("2006-01-02 15:04"))
	}

	return renderPage(strings.ToUpper(it.Name), strings.TrimRight(b.String(), "\n"),
		"esc: back │ r: reveal │ c: copy secret │ u: copy login │ e: edit │ d: delete")
}
