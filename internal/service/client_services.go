package service

import (
	"time"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/internal/utils"
	"github.com/akgarhwal/vault/internal/validators"
	"github.com/akgarhwal/vault/internal/workers"
)

type ClientServices struct {
	Session  *Session
	Vault    VaultService
	Items    ItemService
	Sync     SyncService
	Transfer TransferService

	// Workers runs the mirror worker; start it for long-lived sessions.
	Workers *workers.Workers
}

// ClientOptions carries the tunables of the client services.
type ClientOptions struct {
	AutoLockTimeout time.Duration
	KDFIterations   int
}

func NewClientServices(storage store.Storage, opener adapter.CapabilityOpener, opts ClientOptions, log *logger.Logger) *ClientServices {
	session := NewSession()
	keychain := crypto.NewKeyChainService(opts.KDFIterations)

	syncSvc := NewSyncService(storage, storage, opener, log)
	itemSvc := NewItemService(storage, keychain, session, validators.NewItemPayloadValidator(), utils.NewUUIDGenerator(), syncSvc, log)
	vaultSvc := NewVaultService(storage, keychain, itemSvc, syncSvc, session, opts.AutoLockTimeout, log)
	transferSvc := NewTransferService(storage, keychain, session, vaultSvc, syncSvc, log)

	return &ClientServices{
		Session:  session,
		Vault:    vaultSvc,
		Items:    itemSvc,
		Sync:     syncSvc,
		Transfer: transferSvc,
		Workers:  workers.NewWorkers(syncSvc.Worker()),
	}
}
