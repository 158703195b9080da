package service

import (
	"slices"
	"sync"

	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/models"
)

// Session is the single in-memory owner of the session key and the
// decrypted items. A nil key means locked.
type Session struct {
	mu        sync.Mutex
	key       []byte
	items     []models.DecryptedItem
	isNewUser bool
}

func NewSession() *Session {
	return &Session{}
}

// Unlocked reports whether a key is held.
func (s *Session) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key != nil
}

func (s *Session) IsNewUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key != nil && s.isNewUser
}

// open installs items and then the key, making the session unlocked.
func (s *Session) open(key []byte, items []models.DecryptedItem, isNewUser bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		crypto.Wipe(s.key)
	}
	if items == nil {
		items = []models.DecryptedItem{}
	}
	s.items = items
	s.isNewUser = isNewUser
	s.key = key
}

// close wipes the key and drops the items.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		crypto.Wipe(s.key)
	}
	s.key = nil
	s.items = nil
	s.isNewUser = false
}

// withUnlocked runs fn under the session lock. fn may replace *items.
// The key must not be retained after fn returns.
func (s *Session) withUnlocked(fn func(key []byte, items *[]models.DecryptedItem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return ErrVaultLocked
	}
	return fn(s.key, &s.items)
}

// snapshot returns a copy of the decrypted items.
func (s *Session) snapshot() ([]models.DecryptedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return nil, ErrVaultLocked
	}
	return slices.Clone(s.items), nil
}
