package crypto

import (
	"context"

	"github.com/akgarhwal/vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side key handling. It knows nothing about
// storage or presentation; its only job is to turn a master password into a
// session key and to prove that a key is the right one.
//
//	Salt  = GenerateEncryptionSalt()
//	Key   = DeriveKey(password, salt)
//	Token = CreateValidationToken(Key)
//	ok    = Verify(Key, Token)
type KeyChainService interface {
	// GenerateEncryptionSalt returns 16 random bytes. The salt is not a
	// secret; it is stored next to the validation token.
	GenerateEncryptionSalt() ([]byte, error)

	// DeriveKey stretches password and salt into a 256-bit session key with
	// PBKDF2-HMAC-SHA256. Same inputs always give the same key.
	DeriveKey(ctx context.Context, password string, salt []byte) ([]byte, error)

	// CreateValidationToken encrypts a fixed sentinel under key.
	CreateValidationToken(key []byte) (models.Envelope, error)

	// Verify reports whether token decrypts under key to the sentinel.
	// Tag mismatch and sentinel mismatch are indistinguishable.
	Verify(key []byte, token models.Envelope) bool

	// Encrypt seals plaintext under key with a fresh nonce.
	Encrypt(key, plaintext []byte) (models.Envelope, error)

	// Decrypt opens an envelope produced by Encrypt.
	Decrypt(key []byte, env models.Envelope) ([]byte, error)
}
