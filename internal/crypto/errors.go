// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrDecryptionFailed is returned when an envelope cannot be opened:
	// wrong key, corrupted ciphertext, tampering or malformed input.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeyLength is returned when a key is not 32 bytes long.
	// Decrypt additionally wraps it in ErrDecryptionFailed.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidNonceLength is returned when a nonce is not 12 bytes long.
	ErrInvalidNonceLength = fmt.Errorf("%w: invalid nonce length", ErrDecryptionFailed)

	// ErrCiphertextTooShort is returned when ciphertext is shorter than the GCM tag.
	ErrCiphertextTooShort = fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
)
