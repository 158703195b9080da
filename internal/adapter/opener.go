package adapter

import (
	"fmt"
	"strings"

	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/utils"
	"github.com/akgarhwal/vault/models"
)

// Opener is the default [CapabilityOpener]. All HTTP capabilities it opens
// share one client and one keyring namespace.
type Opener struct {
	client *utils.HTTPClient
	creds  *CredentialStore
	logger *logger.Logger
}

func NewOpener(cfg config.Sync, log *logger.Logger) *Opener {
	return &Opener{
		client: utils.NewHTTPClient(cfg.Timeout),
		creds:  NewCredentialStore(cfg.KeyringService),
		logger: log,
	}
}

func (o *Opener) Open(link models.SyncLink) (FileCapability, error) {
	switch link.Kind {
	case models.SyncKindFile:
		return NewLocalFile(link.Target)
	case models.SyncKindHTTP:
		return NewHTTPFile(link.Target, o.client, o.creds, o.logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, link.Kind)
	}
}

// Credentials exposes the keyring store used for HTTP targets.
func (o *Opener) Credentials() *CredentialStore {
	return o.creds
}

// KindForTarget guesses the link kind from a user-entered destination.
func KindForTarget(target string) string {
	lower := strings.ToLower(strings.TrimSpace(target))
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return models.SyncKindHTTP
	}
	return models.SyncKindFile
}
