package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/models"
)

const foreignVaultWarning = "The file was exported from a different vault. " +
	"After import, unlock it with the master password it was created with."

// locker is the part of the vault session the import path needs.
type locker interface {
	Lock()
}

type transferService struct {
	storage  store.VaultStorage
	keychain crypto.KeyChainService
	session  *Session
	vault    locker
	mirror   mirrorNotifier
	now      func() time.Time

	logger *logger.Logger
}

func NewTransferService(
	storage store.VaultStorage,
	keychain crypto.KeyChainService,
	session *Session,
	vault locker,
	mirror mirrorNotifier,
	log *logger.Logger,
) TransferService {
	return &transferService{
		storage:  storage,
		keychain: keychain,
		session:  session,
		vault:    vault,
		mirror:   mirror,
		now:      time.Now,
		logger:   log,
	}
}

func (t *transferService) Export(ctx context.Context) (models.ExportDocument, error) {
	return buildExport(ctx, t.storage, t.now())
}

func (t *transferService) MarshalDocument(doc models.ExportDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}

func (t *transferService) ParseDocument(data []byte) (models.ExportDocument, error) {
	return ParseExportDocument(data)
}

// ParseExportDocument decodes and validates a portable document. The mirror
// server uses it to refuse uploads that could not be imported.
func ParseExportDocument(data []byte) (models.ExportDocument, error) {
	var doc models.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.ExportDocument{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if err := validateDocument(doc); err != nil {
		return models.ExportDocument{}, err
	}
	return doc, nil
}

// validateDocument rejects documents that could not be unlocked after an
// import, since the import would destroy the local vault.
func validateDocument(doc models.ExportDocument) error {
	switch {
	case doc.Meta == nil:
		return fmt.Errorf("%w: meta is missing", ErrInvalidFormat)
	case doc.Items == nil:
		return fmt.Errorf("%w: items are missing", ErrInvalidFormat)
	case doc.Version > models.ExportDocumentVersion:
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, doc.Version)
	case len(doc.Meta.Salt) == 0, doc.Meta.Validation.IsZero():
		return fmt.Errorf("%w: meta is incomplete", ErrInvalidFormat)
	}

	seen := make(map[string]struct{}, len(doc.Items))
	for i, item := range doc.Items {
		if item.ID == "" {
			return fmt.Errorf("%w: item %d has no id", ErrInvalidFormat, i)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %s", ErrInvalidFormat, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

func (t *transferService) Preview(ctx context.Context, doc models.ExportDocument) (models.ImportPreview, error) {
	if err := validateDocument(doc); err != nil {
		return models.ImportPreview{}, err
	}

	preview := models.ImportPreview{ItemCount: len(doc.Items)}

	localMeta, err := t.storage.GetMeta(ctx)
	switch {
	case errors.Is(err, store.ErrVaultMetaNotFound):
		preview.Added = len(doc.Items)
		preview.Diff = idDiff(nil, doc.Items)
		return preview, nil
	case err != nil:
		return models.ImportPreview{}, fmt.Errorf("read vault meta: %w", err)
	}

	localItems, err := t.storage.GetItems(ctx)
	if err != nil {
		return models.ImportPreview{}, fmt.Errorf("read items: %w", err)
	}

	preview.ForeignVault = !bytes.Equal(localMeta.Salt, doc.Meta.Salt)
	if !preview.ForeignVault {
		_ = t.session.withUnlocked(func(key []byte, _ *[]models.DecryptedItem) error {
			preview.ForeignVault = !t.keychain.Verify(key, doc.Meta.Validation)
			return nil
		})
	}

	local := make(map[string]struct{}, len(localItems))
	for _, it := range localItems {
		local[it.ID] = struct{}{}
	}
	for _, it := range doc.Items {
		if _, ok := local[it.ID]; ok {
			preview.Kept++
			delete(local, it.ID)
		} else {
			preview.Added++
		}
	}
	preview.Removed = len(local)
	preview.Diff = idDiff(localItems, doc.Items)

	return preview, nil
}

func (t *transferService) Import(ctx context.Context, doc models.ExportDocument, confirmer Confirmer) (models.ImportPreview, error) {
	preview, err := t.Preview(ctx, doc)
	if err != nil {
		return models.ImportPreview{}, err
	}

	if !confirmer.Confirm(ctx, ImportMessage(preview)) {
		return preview, ErrNotConfirmed
	}

	if err = t.storage.ReplaceVault(ctx, *doc.Meta, doc.Items); err != nil {
		return preview, fmt.Errorf("replace vault: %w", err)
	}
	t.vault.Lock()
	t.mirror.Notify()

	t.logger.Info().
		Str("func", "transferService.Import").
		Int("items", preview.ItemCount).
		Bool("foreign", preview.ForeignVault).
		Msg("vault imported")
	return preview, nil
}

// ImportMessage is the confirmation text shown before an import.
func ImportMessage(p models.ImportPreview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Replace the local vault with %d imported items (%d new, %d kept, %d removed)?",
		p.ItemCount, p.Added, p.Kept, p.Removed)
	if p.ForeignVault {
		b.WriteString("\n")
		b.WriteString(foreignVaultWarning)
	}
	return b.String()
}

// idDiff renders a line diff of local and imported item ids, one id per
// line prefixed with '+', '-' or ' '.
func idDiff(local, imported []models.EncryptedItem) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinIDs(local), joinIDs(imported))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
		}
	}
	return out.String()
}

func joinIDs(items []models.EncryptedItem) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.ID)
		b.WriteByte('\n')
	}
	return b.String()
}
