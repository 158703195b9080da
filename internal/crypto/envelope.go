// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	"github.com/akgarhwal/vault/models"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12
	// SaltSize is the KDF salt length in bytes.
	SaltSize = 16

	tagSize = 16
)

// Encrypt seals plaintext with AES-256-GCM under key. A fresh 96-bit nonce is
// read from the OS CSPRNG on every call and returned alongside the
// ciphertext; the ciphertext includes the authentication tag.
func Encrypt(key, plaintext []byte) (models.Envelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.Envelope{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("error generating nonce: %w", err)
	}

	return models.Envelope{
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
		Nonce:      nonce,
	}, nil
}

// Decrypt opens env under key. Any failure is reported as (or wraps)
// [ErrDecryptionFailed] and no plaintext is returned.
func Decrypt(key []byte, env models.Envelope) ([]byte, error) {
	if len(env.Nonce) != NonceSize {
		return nil, ErrInvalidNonceLength
	}
	if len(env.Ciphertext) < tagSize {
		return nil, ErrCiphertextTooShort
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	plaintext, err := gcm.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating gcm: %w", err)
	}
	return gcm, nil
}

// Wipe overwrites b with zeros. It is used on session keys when the vault
// locks; the Go runtime may still hold copies made before the call.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
