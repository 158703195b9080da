package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/internal/workers"
	"github.com/akgarhwal/vault/models"
)

type syncService struct {
	vault  store.VaultStorage
	links  store.SyncLinkStorage
	opener adapter.CapabilityOpener
	worker *workers.MirrorWorker
	now    func() time.Time

	// ioMu serializes the operations that talk to the capability. mu guards
	// the fields below and is never held across I/O.
	ioMu       sync.Mutex
	mu         sync.Mutex
	capability adapter.FileCapability
	link       *models.SyncLink
	status     models.SyncStatus

	logger *logger.Logger
}

// NewSyncService creates the reconciler together with its mirror worker.
// The worker must be started by the caller (see [ClientServices.Workers]);
// until then Notify only records that a write is pending.
func NewSyncService(vault store.VaultStorage, links store.SyncLinkStorage, opener adapter.CapabilityOpener, log *logger.Logger) SyncService {
	s := &syncService{
		vault:  vault,
		links:  links,
		opener: opener,
		now:    time.Now,
		status: models.SyncStatusUnlinked,
		logger: log,
	}
	s.worker = workers.NewMirrorWorker(s.OnMutation, log)
	return s
}

func (s *syncService) Worker() workers.Worker {
	return s.worker
}

// LinkNew adopts capability only after the first write succeeded. On
// failure the previous link and its status are left as they were.
func (s *syncService) LinkNew(ctx context.Context, capability adapter.FileCapability, label string) error {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	perm, err := capability.RequestPermission(ctx, models.PermissionReadWrite)
	if err != nil {
		return fmt.Errorf("request permission: %w", err)
	}
	if perm != models.PermissionGranted {
		return ErrPermissionDenied
	}

	if err = s.writeMirror(ctx, capability); err != nil {
		return err
	}

	link := capability.Descriptor()
	link.Label = label
	if link.Label == "" {
		link.Label = filepath.Base(link.Target)
	}
	link.LinkedAt = s.now().UTC()

	if err = s.links.SetSyncLink(ctx, link); err != nil {
		return fmt.Errorf("save sync link: %w", err)
	}

	s.mu.Lock()
	s.capability = capability
	s.link = &link
	s.status = models.SyncStatusConnected
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "syncService.LinkNew").
		Str("kind", link.Kind).
		Str("label", link.Label).
		Msg("mirror linked")
	return nil
}

func (s *syncService) Reconnect(ctx context.Context) (bool, error) {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	capability, err := s.reopen(ctx)
	if err != nil {
		return false, err
	}

	granted, err := s.ensurePermission(ctx, capability)
	if err != nil {
		s.record(capability, models.SyncStatusDisconnected)
		return false, err
	}
	if !granted {
		s.record(capability, models.SyncStatusDisconnected)
		return false, ErrPermissionDenied
	}

	s.record(capability, models.SyncStatusConnected)
	return true, nil
}

func (s *syncService) OnMutation(ctx context.Context) error {
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	s.mu.Lock()
	capability := s.capability
	s.mu.Unlock()

	if capability == nil {
		var err error
		capability, err = s.reopen(ctx)
		if errors.Is(err, ErrNoSyncLink) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	granted, err := s.ensurePermission(ctx, capability)
	if err != nil {
		s.record(capability, models.SyncStatusDisconnected)
		return err
	}
	if !granted {
		s.record(capability, models.SyncStatusDisconnected)
		s.logger.Warn().Str("func", "syncService.OnMutation").Msg("mirror permission denied, local change kept")
		return ErrPermissionDenied
	}

	if err = s.writeMirror(ctx, capability); err != nil {
		s.record(capability, models.SyncStatusDisconnected)
		return err
	}

	s.record(capability, models.SyncStatusConnected)
	return nil
}

func (s *syncService) Notify() {
	s.worker.Trigger()
}

func (s *syncService) Status() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *syncService) Link() (models.SyncLink, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.link == nil {
		return models.SyncLink{}, false
	}
	return *s.link, true
}

func (s *syncService) Unlink(ctx context.Context) error {
	// waits for an in-flight write so it cannot re-adopt the deleted link
	s.ioMu.Lock()
	defer s.ioMu.Unlock()

	if err := s.links.DeleteSyncLink(ctx); err != nil {
		return fmt.Errorf("delete sync link: %w", err)
	}
	s.Forget()
	return nil
}

func (s *syncService) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.capability = nil
	s.link = nil
	s.status = models.SyncStatusUnlinked
}

// record sets the status unless the link was replaced or dropped while
// capability was in use.
func (s *syncService) record(capability adapter.FileCapability, status models.SyncStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capability == capability {
		s.status = status
	}
}

// reopen loads the stored descriptor into a capability. Caller holds s.ioMu.
func (s *syncService) reopen(ctx context.Context) (adapter.FileCapability, error) {
	link, err := s.links.GetSyncLink(ctx)
	if errors.Is(err, store.ErrSyncLinkNotFound) {
		s.Forget()
		return nil, ErrNoSyncLink
	}
	if err != nil {
		return nil, fmt.Errorf("read sync link: %w", err)
	}

	capability, err := s.opener.Open(link)
	if err != nil {
		s.mu.Lock()
		s.status = models.SyncStatusDisconnected
		s.mu.Unlock()
		return nil, fmt.Errorf("open sync link: %w", err)
	}

	s.mu.Lock()
	s.capability = capability
	s.link = &link
	s.mu.Unlock()
	return capability, nil
}

// ensurePermission queries and, if needed, requests readwrite access.
// Caller holds s.ioMu and records the outcome.
func (s *syncService) ensurePermission(ctx context.Context, capability adapter.FileCapability) (bool, error) {
	perm, err := capability.QueryPermission(ctx, models.PermissionReadWrite)
	if err == nil && perm != models.PermissionGranted {
		perm, err = capability.RequestPermission(ctx, models.PermissionReadWrite)
	}
	if err != nil {
		return false, fmt.Errorf("check mirror permission: %w", err)
	}
	return perm == models.PermissionGranted, nil
}

func (s *syncService) writeMirror(ctx context.Context, capability adapter.FileCapability) error {
	doc, err := buildExport(ctx, s.vault, s.now())
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	if err = capability.Write(ctx, data); err != nil {
		return fmt.Errorf("write mirror: %w", err)
	}
	return nil
}
