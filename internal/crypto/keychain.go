// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/akgarhwal/vault/models"
)

const (
	// MinIterations is the lowest accepted PBKDF2 iteration count.
	MinIterations = 100_000

	validationSentinel = "VALID"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int
}

// NewKeyChainService constructs a [KeyChainService] with the given PBKDF2
// iteration count. Values below [MinIterations] are raised to it.
func NewKeyChainService(iterations int) KeyChainService {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	return &keyChainService{iterations: iterations}
}

// GenerateEncryptionSalt implements [KeyChainService].
func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. The stretch itself cannot be
// interrupted, so ctx is checked before and after it.
func (k *keyChainService) DeriveKey(ctx context.Context, password string, salt []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New)

	if err := ctx.Err(); err != nil {
		Wipe(key)
		return nil, err
	}
	return key, nil
}

// CreateValidationToken implements [KeyChainService].
func (k *keyChainService) CreateValidationToken(key []byte) (models.Envelope, error) {
	return Encrypt(key, []byte(validationSentinel))
}

// Verify implements [KeyChainService].
func (k *keyChainService) Verify(key []byte, token models.Envelope) bool {
	plaintext, err := Decrypt(key, token)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(plaintext, []byte(validationSentinel)) == 1
}

// Encrypt implements [KeyChainService].
func (k *keyChainService) Encrypt(key, plaintext []byte) (models.Envelope, error) {
	return Encrypt(key, plaintext)
}

// Decrypt implements [KeyChainService].
func (k *keyChainService) Decrypt(key []byte, env models.Envelope) ([]byte, error) {
	return Decrypt(key, env)
}
