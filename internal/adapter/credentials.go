package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// ErrInvalidUsername is returned for basic-auth user names containing ':'.
var ErrInvalidUsername = errors.New("username must not contain ':'")

// CredentialStore keeps HTTP mirror credentials in the OS keyring, one
// entry per target URL. Secrets never touch the vault database or the
// configuration file.
type CredentialStore struct {
	service string
}

func NewCredentialStore(service string) *CredentialStore {
	return &CredentialStore{service: service}
}

// Save stores user and password for target, replacing any previous entry.
func (s *CredentialStore) Save(target, user, password string) error {
	if strings.Contains(user, ":") {
		return ErrInvalidUsername
	}
	if err := keyring.Set(s.service, target, user+":"+password); err != nil {
		return fmt.Errorf("error saving credentials: %w", err)
	}
	return nil
}

// Load returns the credentials stored for target or [ErrNoCredentials].
func (s *CredentialStore) Load(target string) (string, string, error) {
	secret, err := keyring.Get(s.service, target)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", "", ErrNoCredentials
	}
	if err != nil {
		return "", "", fmt.Errorf("error loading credentials: %w", err)
	}

	user, password, _ := strings.Cut(secret, ":")
	return user, password, nil
}

// Delete removes the entry for target. A missing entry is not an error.
func (s *CredentialStore) Delete(target string) error {
	err := keyring.Delete(s.service, target)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("error deleting credentials: %w", err)
	}
	return nil
}
