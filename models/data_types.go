// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemType defines the category of a vault item.
// The value determines which fields of ItemPayload are meaningful.
type ItemType string

const (
	// ItemTypePassword represents login credentials: username, password and URL.
	ItemTypePassword ItemType = "password"

	// ItemTypeCard represents payment card information.
	// All card fields are considered highly sensitive.
	ItemTypeCard ItemType = "card"
)

// Valid reports whether t is one of the known item categories.
func (t ItemType) Valid() bool {
	return t == ItemTypePassword || t == ItemTypeCard
}

// ItemPayload is the plaintext content of a vault item.
//
// It is a discriminated union keyed by Type: password items use Username,
// Password and URL; card items use the Card* fields. The struct only ever
// exists in memory or, serialized to JSON, inside an encrypted Envelope.
type ItemPayload struct {
	Type ItemType `json:"type"`
	Name string   `json:"name"`

	// UpdatedAt is the last modification time in Unix milliseconds.
	UpdatedAt int64 `json:"updatedAt"`

	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	URL      string `json:"url,omitempty"`

	CardHolder string `json:"cardHolder,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardExpiry string `json:"cardExpiry,omitempty"`
	CardCVV    string `json:"cardCvv,omitempty"`
}

// NewPasswordPayload builds a password item payload.
func NewPasswordPayload(name, username, password, url string) ItemPayload {
	return ItemPayload{
		Type:     ItemTypePassword,
		Name:     name,
		Username: username,
		Password: password,
		URL:      url,
	}
}

// NewCardPayload builds a payment card item payload.
func NewCardPayload(name, holder, number, expiry, cvv string) ItemPayload {
	return ItemPayload{
		Type:       ItemTypeCard,
		Name:       name,
		CardHolder: holder,
		CardNumber: number,
		CardExpiry: expiry,
		CardCVV:    cvv,
	}
}

// Touch stamps the payload with the given modification time.
func (p *ItemPayload) Touch(now time.Time) {
	p.UpdatedAt = now.UnixMilli()
}

// Secret returns the primary secret of the item: the password for
// password items and the card number for cards.
func (p ItemPayload) Secret() string {
	if p.Type == ItemTypeCard {
		return p.CardNumber
	}
	return p.Password
}

// Login returns the secondary identifier of the item: the username for
// password items and the card holder for cards.
func (p ItemPayload) Login() string {
	if p.Type == ItemTypeCard {
		return p.CardHolder
	}
	return p.Username
}

// DecryptedItem is the session-scoped, in-memory view of a vault item.
type DecryptedItem struct {
	ID string `json:"id"`
	ItemPayload
}
