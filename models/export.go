// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ExportDocumentVersion is the only portable document version produced
// and accepted.
const ExportDocumentVersion = 1

// ExportDocument is the portable, fully encrypted representation of a
// vault. Meta is a pointer and Items keeps nil distinct from empty so that
// a decoder can tell a missing field from an empty vault.
type ExportDocument struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
	Meta       *VaultMeta      `json:"meta"`
	Items      []EncryptedItem `json:"items"`
}

// UnmarshalJSON decodes exportedAt leniently. The timestamp is
// informational, so a missing, empty or non RFC 3339 value leaves
// ExportedAt zero instead of rejecting the document.
func (d *ExportDocument) UnmarshalJSON(data []byte) error {
	type plain ExportDocument
	var raw struct {
		plain
		ExportedAt json.RawMessage `json:"exportedAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = ExportDocument(raw.plain)
	d.ExportedAt = time.Time{}

	var stamp string
	if json.Unmarshal(raw.ExportedAt, &stamp) == nil {
		if t, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
			d.ExportedAt = t
		}
	}
	return nil
}

// ImportPreview summarizes what an import would do before the user
// confirms the replacement.
type ImportPreview struct {
	// ForeignVault is set when the document was not produced by the local
	// vault; the current master password will likely not unlock it.
	ForeignVault bool
	ItemCount    int
	Added        int
	Removed      int
	Kept         int
	// Diff is a line diff of local and imported item ids.
	Diff string
}
