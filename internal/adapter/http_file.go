package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/utils"
	"github.com/akgarhwal/vault/models"
)

// httpFile is a [FileCapability] over a single WebDAV-style resource that
// accepts HEAD and PUT. Credentials are loaded from the keyring only on
// RequestPermission.
type httpFile struct {
	target string
	client *utils.HTTPClient
	creds  *CredentialStore

	mu       sync.Mutex
	user     string
	password string
	authed   bool

	logger *logger.Logger
}

// NewHTTPFile returns a capability for the absolute http(s) URL target.
func NewHTTPFile(target string, client *utils.HTTPClient, creds *CredentialStore, log *logger.Logger) (FileCapability, error) {
	if target == "" {
		return nil, ErrEmptyTarget
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid mirror url %q: scheme and host required", target)
	}

	return &httpFile{target: u.String(), client: client, creds: creds, logger: log}, nil
}

func (h *httpFile) Descriptor() models.SyncLink {
	return models.SyncLink{Kind: models.SyncKindHTTP, Target: h.target}
}

// QueryPermission probes the resource with HEAD. A missing resource is
// writable; 401 and 403 ask for credentials until some were tried.
func (h *httpFile) QueryPermission(ctx context.Context, _ models.PermissionMode) (models.Permission, error) {
	resp, err := h.request(ctx).Head(h.target)
	if err != nil {
		return models.PermissionDenied, fmt.Errorf("error probing %s: %w", h.target, err)
	}

	switch code := resp.StatusCode(); {
	case code >= http.StatusOK && code < http.StatusMultipleChoices, code == http.StatusNotFound:
		return models.PermissionGranted, nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		if h.hasCredentials() {
			return models.PermissionDenied, nil
		}
		return models.PermissionPrompt, nil
	default:
		return models.PermissionDenied, mapHTTPError(resp)
	}
}

func (h *httpFile) RequestPermission(ctx context.Context, mode models.PermissionMode) (models.Permission, error) {
	perm, err := h.QueryPermission(ctx, mode)
	if err != nil || perm != models.PermissionPrompt {
		return perm, err
	}

	user, password, err := h.creds.Load(h.target)
	if errors.Is(err, ErrNoCredentials) {
		h.logger.Debug().Str("target", h.target).Msg("no stored credentials for mirror")
		return models.PermissionDenied, nil
	}
	if err != nil {
		return models.PermissionDenied, err
	}

	h.mu.Lock()
	h.user, h.password, h.authed = user, password, true
	h.mu.Unlock()

	return h.QueryPermission(ctx, mode)
}

func (h *httpFile) Write(ctx context.Context, data []byte) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Put(h.target)
	if err != nil {
		return fmt.Errorf("error uploading to %s: %w", h.target, err)
	}

	return mapHTTPError(resp)
}

func (h *httpFile) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.authed {
		req.SetBasicAuth(h.user, h.password)
	}
	return req
}

func (h *httpFile) hasCredentials() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.authed
}
