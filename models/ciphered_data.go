// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the unit of authenticated encryption: ciphertext (including
// the GCM tag) and the 12-byte nonce used to produce it.
//
// Byte slices marshal to standard base64, which is the portable document
// encoding. The nonce is serialized under "iv".
type Envelope struct {
	Ciphertext []byte `json:"ciphertext"`
	Nonce      []byte `json:"iv"`
}

// IsZero reports whether the envelope carries no data.
func (e Envelope) IsZero() bool {
	return len(e.Ciphertext) == 0 && len(e.Nonce) == 0
}

// VaultMeta is the per-vault key material needed to re-derive and validate
// the session key. It is written once on creation and replaced only by import.
type VaultMeta struct {
	Salt       []byte   `json:"salt"`
	Validation Envelope `json:"validation"`
}

// EncryptedItem is the persisted form of a vault item. Data is the
// encryption of a JSON-serialized ItemPayload.
type EncryptedItem struct {
	ID   string   `json:"id"`
	Data Envelope `json:"data"`
}

// VaultState is the state of the vault session state machine.
type VaultState string

const (
	// VaultStateNoVault means no metadata has been persisted yet.
	VaultStateNoVault VaultState = "no_vault"
	// VaultStateLocked means a vault exists and no key is held in memory.
	VaultStateLocked VaultState = "locked"
	// VaultStateUnlocked means the session key and decrypted items are in memory.
	VaultStateUnlocked VaultState = "unlocked"
)
