package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/app"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/models"
)

type screen int

const (
	screenLoading screen = iota
	screenUnlock
	screenList
	screenDetail
	screenForm
	screenPrompt
)

type appModel struct {
	ctx    context.Context
	svc    *service.ClientServices
	opener adapter.CapabilityOpener
	info   models.AppBuildInfo
	log    *logger.Logger

	screen  screen
	unlock  unlockModel
	list    listModel
	detail  detailModel
	form    formModel
	prompt  promptModel
	confirm *confirmModel

	showAbout bool
	status    string
	statusSeq int
	errMsg    string
	busy      bool
	// copied holds the last value put on the clipboard so it can be cleared on quit.
	copied string
}

func newAppModel(ctx context.Context, svc *service.ClientServices, opener adapter.CapabilityOpener, info models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:    ctx,
		svc:    svc,
		opener: opener,
		info:   info,
		log:    log,
		screen: screenLoading,
		list:   newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return cmdLoadState(m.ctx, m.svc.Vault)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		m.svc.Vault.Touch()
		if m.busy {
			return m, nil
		}
		return m.handleKey(msg)

	case vaultStateMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		switch msg.state {
		case models.VaultStateUnlocked:
			return m.enterList(), nil
		case models.VaultStateLocked:
			m.unlock = newUnlockModel(false)
		default:
			m.unlock = newUnlockModel(true)
		}
		m.screen = screenUnlock
		return m, nil

	case unlockDoneMsg:
		m.busy = false
		m.unlock.clear()
		if msg.err != nil {
			m.unlock.errMsg = unlockError(msg.err)
			return m, nil
		}
		m = m.enterList()
		return m, cmdReconnect(m.ctx, m.svc.Sync, syncStartup)

	case lockedMsg:
		return m.toLocked()

	case itemSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.form.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m = m.enterList()
		m.detail = detailModel{item: msg.item}
		m.screen = screenDetail
		return m.setStatus("Saved " + msg.item.Name)

	case itemDeletedMsg:
		m.busy = false
		m = m.enterList()
		if msg.err != nil {
			return m.setError(msg.err)
		}
		return m.setStatus("Item deleted")

	case syncDoneMsg:
		return m.handleSyncDone(msg)

	case exportDoneMsg:
		m.busy = false
		m.screen = screenList
		if msg.err != nil {
			return m.setError(msg.err)
		}
		return m.setStatus("Exported to " + msg.path)

	case importPreviewMsg:
		m.busy = false
		if msg.err != nil {
			m.screen = screenList
			return m.setError(msg.err)
		}
		m.screen = screenList
		m.confirm = &confirmModel{
			purpose: confirmImport,
			message: service.ImportMessage(msg.preview),
			doc:     msg.doc,
		}
		return m, nil

	case importDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.setError(msg.err)
		}
		m.unlock = newUnlockModel(false)
		m.unlock.errMsg = "Vault imported. Unlock it with its master password."
		m.screen = screenUnlock
		return m, nil

	case resetDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.setError(msg.err)
		}
		m.list = newListModel()
		return m, cmdLoadState(m.ctx, m.svc.Vault)

	case copiedMsg:
		if msg.err != nil {
			return m.setError(fmt.Errorf("clipboard: %w", msg.err))
		}
		return m.setStatus(fmt.Sprintf("Copied %s, clipboard clears in %s", msg.what, clipboardTTL))

	case clearClipboardMsg:
		clearClipboard(msg.value)
		if m.copied == msg.value {
			m.copied = ""
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.errMsg = ""
		}
		return m, nil
	}

	return m.forward(msg)
}

// forward passes non-key messages such as cursor blinks to the focused input.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenUnlock:
		m.unlock, cmd = m.unlock.update(msg)
	case screenForm:
		m.form, cmd = m.form.update(msg)
	case screenPrompt:
		m.prompt, cmd = m.prompt.update(msg)
	case screenList:
		if m.list.searching {
			m.list.search, cmd = m.list.search.Update(msg)
		}
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.showAbout {
		m.showAbout = false
		return m, nil
	}

	switch m.screen {
	case screenUnlock:
		return m.handleUnlockKey(msg)
	case screenList:
		return m.handleListKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	case screenPrompt:
		return m.handlePromptKey(msg)
	}
	return m, nil
}

func (m appModel) handleUnlockKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		if errText := m.unlock.validate(); errText != "" {
			m.unlock.errMsg = errText
			return m, nil
		}
		m.busy = true
		m.unlock.errMsg = ""
		return m, cmdUnlock(m.ctx, m.svc.Vault, m.unlock.create, m.unlock.password())
	}
	if msg.Type == tea.KeyEsc {
		return m.quit()
	}

	var cmd tea.Cmd
	m.unlock, cmd = m.unlock.update(msg)
	return m, cmd
}

func (m appModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		switch {
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			m.list.searching = false
			if msg.Type == tea.KeyEsc {
				m.list.search.SetValue("")
			}
			m.list.search.Blur()
			return m.refreshList(), nil
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		return m.refreshList(), cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.lock):
		m.svc.Vault.Lock()
		return m.toLocked()
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.tab):
		m.list.nextTab(1)
		return m.refreshList(), nil
	case key.Matches(msg, keys.backtab):
		m.list.nextTab(-1)
		return m.refreshList(), nil
	case key.Matches(msg, keys.search):
		m.list.searching = true
		cmd := m.list.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.enter):
		if item, ok := m.list.current(); ok {
			m.detail = detailModel{item: item}
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		m.form = newFormModel(nil, models.ItemTypePassword)
		m.screen = screenForm
	case key.Matches(msg, keys.edit):
		if item, ok := m.list.current(); ok {
			m.form = newFormModel(&item, item.Type)
			m.screen = screenForm
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.list.current(); ok {
			m.confirm = deleteConfirm(item)
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.list.current(); ok {
			return m.copy("secret", item.Secret())
		}
	case key.Matches(msg, keys.copyUser):
		if item, ok := m.list.current(); ok {
			return m.copy("login", item.Login())
		}
	case key.Matches(msg, keys.generate):
		pw, err := cmdGenerate()
		if err != nil {
			return m.setError(err)
		}
		return m.copy("generated password", pw)
	case key.Matches(msg, keys.link):
		target := ""
		if link, ok := m.svc.Sync.Link(); ok {
			target = link.Target
		}
		m.prompt = newPromptModel(promptLink, target)
		m.screen = screenPrompt
	case key.Matches(msg, keys.sync):
		m.busy = true
		return m, cmdReconnect(m.ctx, m.svc.Sync, syncReconnect)
	case key.Matches(msg, keys.unlink):
		m.busy = true
		return m, cmdUnlink(m.ctx, m.svc.Sync)
	case key.Matches(msg, keys.export):
		m.prompt = newPromptModel(promptExport, "vault-export.json")
		m.screen = screenPrompt
	case key.Matches(msg, keys.importDB):
		m.prompt = newPromptModel(promptImport, "")
		m.screen = screenPrompt
	case key.Matches(msg, keys.reset):
		m.confirm = &confirmModel{
			purpose: confirmResetFirst,
			message: "Erase the vault and all items? This cannot be undone.",
		}
	case key.Matches(msg, keys.about):
		m.showAbout = true
	}
	return m, nil
}

func (m appModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.detail.item
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.detail = detailModel{}
		m.screen = screenList
	case key.Matches(msg, keys.lock):
		m.svc.Vault.Lock()
		return m.toLocked()
	case key.Matches(msg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
	case key.Matches(msg, keys.copy):
		return m.copy("secret", item.Secret())
	case key.Matches(msg, keys.copyUser):
		return m.copy("login", item.Login())
	case key.Matches(msg, keys.edit):
		m.form = newFormModel(&item, item.Type)
		m.screen = screenForm
	case key.Matches(msg, keys.delete):
		m.confirm = deleteConfirm(item)
	}
	return m, nil
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.form = formModel{}
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.save):
		return m.saveForm()
	case key.Matches(msg, keys.enter):
		if m.form.lastField() {
			return m.saveForm()
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(1)
		return m, cmd
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(1)
		return m, cmd
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(-1)
		return m, cmd
	case key.Matches(msg, keys.toggle):
		m.form.toggleType()
		return m, nil
	case msg.String() == "ctrl+g":
		pw, err := cmdGenerate()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.setGenerated(pw)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) saveForm() (tea.Model, tea.Cmd) {
	m.form.errMsg = ""
	m.busy = true
	return m, cmdSaveItem(m.ctx, m.svc.Items, m.form.itemID, m.form.payload())
}

func (m appModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.enter):
		value := m.prompt.value()
		if value == "" {
			return m, nil
		}
		m.busy = true
		switch m.prompt.purpose {
		case promptLink:
			return m, cmdLink(m.ctx, m.svc.Sync, m.opener, value)
		case promptExport:
			return m, cmdExport(m.ctx, m.svc.Transfer, value)
		case promptImport:
			return m, cmdPreviewImport(m.ctx, m.svc.Transfer, value)
		}
		m.busy = false
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.update(msg)
	return m, cmd
}

func (m appModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := *m.confirm
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
	case key.Matches(msg, keys.no):
		m.confirm = nil
		return m, nil
	default:
		return m, nil
	}

	switch c.purpose {
	case confirmDelete:
		m.busy = true
		return m, cmdDeleteItem(m.ctx, m.svc.Items, c.itemID)
	case confirmImport:
		m.busy = true
		return m, cmdImport(m.ctx, m.svc.Transfer, c.doc)
	case confirmResetFirst:
		m.confirm = &confirmModel{
			purpose: confirmResetSecond,
			message: "Are you absolutely sure? Every item will be destroyed.",
		}
		return m, nil
	case confirmResetSecond:
		m.busy = true
		return m, cmdReset(m.ctx, m.svc.Vault)
	case confirmRelink:
		m.prompt = newPromptModel(promptLink, "")
		m.screen = screenPrompt
	}
	return m, nil
}

func (m appModel) handleSyncDone(msg syncDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if m.screen == screenPrompt {
		m.screen = screenList
	}
	if msg.err != nil {
		if msg.action == syncStartup && errors.Is(msg.err, service.ErrNoSyncLink) {
			return m, nil
		}
		if msg.action != syncUnlink && deniedErr(msg.err) {
			m.confirm = &confirmModel{
				purpose: confirmRelink,
				message: "Access to the mirror file was refused. Link a different file?",
			}
			return m, nil
		}
		if msg.action == syncStartup {
			m.log.Warn().Err(msg.err).Msg("startup reconnect failed")
		}
		return m.setError(msg.err)
	}

	switch msg.action {
	case syncLink:
		return m.setStatus("Mirror linked")
	case syncUnlink:
		return m.setStatus("Mirror unlinked")
	case syncReconnect:
		return m.setStatus("Mirror reconnected")
	}
	return m, nil
}

func (m appModel) copy(what, value string) (tea.Model, tea.Cmd) {
	if value == "" {
		return m.setStatus("Nothing to copy")
	}
	m.copied = value
	return m, tea.Batch(cmdCopy(what, value), cmdClearClipboardLater(value))
}

func (m appModel) enterList() appModel {
	m.screen = screenList
	return m.refreshList()
}

func (m appModel) refreshList() appModel {
	items, err := m.svc.Items.Filter(m.list.filter())
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.list.setItems(items)
	return m
}

func (m appModel) toLocked() (tea.Model, tea.Cmd) {
	m.busy = false
	m.confirm = nil
	m.showAbout = false
	m.detail = detailModel{}
	m.form = formModel{}
	m.list = newListModel()
	m.unlock = newUnlockModel(false)
	m.screen = screenUnlock
	return m, nil
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.copied != "" {
		clearClipboard(m.copied)
	}
	m.svc.Vault.Lock()
	return m, tea.Quit
}

func (m appModel) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.errMsg = ""
	return m, cmdClearStatusLater(m.statusSeq)
}

func (m appModel) setError(err error) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = ""
	m.errMsg = capitalize(app.UserMessage(err))
	return m, cmdClearStatusLater(m.statusSeq)
}

func unlockError(err error) string {
	return capitalize(app.UserMessage(err))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func deniedErr(err error) bool {
	return errors.Is(err, service.ErrPermissionDenied) || errors.Is(err, adapter.ErrPermissionDenied)
}

func deleteConfirm(item models.DecryptedItem) *confirmModel {
	return &confirmModel{
		purpose: confirmDelete,
		itemID:  item.ID,
		message: fmt.Sprintf("Delete %q?", item.Name),
	}
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenLoading:
		body = renderPage("VAULT", "Loading...", "ctrl+c: quit")
	case screenUnlock:
		body = m.unlock.View(m.busy)
	case screenList:
		link, linked := m.svc.Sync.Link()
		body = m.list.View(syncBadge(m.svc.Sync.Status(), link, linked))
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View(m.busy)
	case screenPrompt:
		body = m.prompt.View(m.busy)
	}

	switch {
	case m.confirm != nil:
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.confirm.View())
	case m.showAbout:
		about := fmt.Sprintf("vault %s\ncommit %s\nbuilt %s\n\nany key to close", m.info.Version(), m.info.Commit(), m.info.Date())
		body = lipgloss.JoinVertical(lipgloss.Left, body, overlayBoxStyle.Render(about))
	}

	if m.errMsg != "" {
		body += "\n" + errorStyle.Render(m.errMsg)
	} else if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}
	return appStyle.Render(body)
}
