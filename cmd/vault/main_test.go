package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/akgarhwal/vault/internal/handler/http"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/models"
)

type cli struct {
	t   *testing.T
	dir string
}

func newCLI(t *testing.T) *cli {
	t.Setenv(passwordEnv, "master password")
	return &cli{t: t, dir: t.TempDir()}
}

// run executes one command against the bolt file of the test, the way a
// separate process would.
func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	return c.runContext(context.Background(), stdin, args...)
}

func (c *cli) runContext(ctx context.Context, stdin string, args ...string) (string, error) {
	c.t.Helper()
	base := []string{
		"--storage", "bolt",
		"--db", filepath.Join(c.dir, "vault.db"),
		"--log-file", filepath.Join(c.dir, "vault.log"),
	}
	var out, errOut bytes.Buffer
	err := execute(ctx, append(base, args...), strings.NewReader(stdin), &out, &errOut, models.NewAppBuildInfo("test", "", ""))
	return out.String(), err
}

func (c *cli) mustRun(stdin string, args ...string) string {
	c.t.Helper()
	out, err := c.run(stdin, args...)
	require.NoError(c.t, err, out)
	return out
}

func TestCLI_AddListGet(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")
	c.mustRun("hunter2\n", "add", "password", "GitHub", "--username", "octo", "--url", "https://github.com")
	c.mustRun("", "add", "card", "Visa", "--holder", "A B", "--number", "4111111111111111", "--expiry", "12/30", "--cvv", "123")

	out := c.mustRun("", "list")
	assert.Contains(t, out, "GitHub")
	assert.Contains(t, out, "Visa")

	out = c.mustRun("", "list", "--type", "card")
	assert.NotContains(t, out, "GitHub")
	assert.Contains(t, out, "Visa")

	id := itemID(t, c.mustRun("", "list", "--query", "git"), "GitHub")

	out = c.mustRun("", "get", id)
	assert.Contains(t, out, "octo")
	assert.NotContains(t, out, "hunter2")

	out = c.mustRun("", "get", id, "--reveal")
	assert.Contains(t, out, "hunter2")
}

func TestCLI_InitTwiceFails(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")

	_, err := c.run("", "init")
	assert.ErrorIs(t, err, service.ErrVaultExists)
}

func TestCLI_WrongPassword(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")

	t.Setenv(passwordEnv, "guess")
	_, err := c.run("", "list")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestCLI_InvalidCardRejected(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")

	_, err := c.run("", "add", "card", "Bad", "--number", "12ab", "--expiry", "13/99")
	assert.Error(t, err)

	out := c.mustRun("", "list")
	assert.NotContains(t, out, "Bad")
}

func TestCLI_DeleteNeedsConfirmation(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")
	c.mustRun("pw\n", "add", "password", "Mail")
	id := itemID(t, c.mustRun("", "list"), "Mail")

	_, err := c.run("n\n", "delete", id)
	assert.ErrorIs(t, err, service.ErrNotConfirmed)
	assert.Contains(t, c.mustRun("", "list"), "Mail")

	c.mustRun("y\n", "delete", id)
	assert.NotContains(t, c.mustRun("", "list"), "Mail")
}

func TestCLI_ExportResetImport(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")
	c.mustRun("pw\n", "add", "password", "Bank")

	exportPath := filepath.Join(c.dir, "export.json")
	c.mustRun("", "export", exportPath)

	info, err := os.Stat(exportPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Bank")

	c.mustRun("", "reset", "--yes")
	out := c.mustRun("", "status")
	assert.Contains(t, out, string(models.VaultStateNoVault))

	c.mustRun("", "import", exportPath, "--yes")
	assert.Contains(t, c.mustRun("", "list"), "Bank")
}

func TestCLI_ImportDeclined(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")
	c.mustRun("pw\n", "add", "password", "Keep")
	exportPath := filepath.Join(c.dir, "export.json")
	c.mustRun("", "export", exportPath)
	c.mustRun("pw\n", "add", "password", "New")

	_, err := c.run("no\n", "import", exportPath)
	assert.ErrorIs(t, err, service.ErrNotConfirmed)
	assert.Contains(t, c.mustRun("", "list"), "New")
}

func TestCLI_ResetDeclinedKeepsVault(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")

	// first answer yes, second no
	out, err := c.run("y\nn\n", "reset")
	assert.ErrorIs(t, err, service.ErrNotConfirmed)
	assert.Contains(t, out, "Nothing was erased")
	assert.Contains(t, c.mustRun("", "status"), string(models.VaultStateLocked))
}

func TestCLI_LinkMirrorsMutations(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")

	mirror := filepath.Join(c.dir, "mirror", "vault.json")
	out := c.mustRun("", "link", mirror, "--label", "usb")
	assert.Contains(t, out, "usb")

	c.mustRun("pw\n", "add", "password", "One")
	c.mustRun("pw\n", "add", "password", "Two")

	data, err := os.ReadFile(mirror)
	require.NoError(t, err)
	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Items, 2)

	out = c.mustRun("", "status")
	assert.Contains(t, out, mirror)
	assert.Contains(t, out, string(models.SyncStatusConnected))

	c.mustRun("", "unlink")
	assert.Contains(t, c.mustRun("", "status"), "Mirror: none")
	_, err = os.Stat(mirror)
	assert.NoError(t, err, "unlink keeps the mirror file")
}

func TestCLI_LinkUserRequiresHTTP(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")

	_, err := c.run("secret\n", "link", filepath.Join(c.dir, "m.json"), "--user", "bob")
	assert.Error(t, err)
}

func TestCLI_ReconnectWithoutLink(t *testing.T) {
	c := newCLI(t)
	c.mustRun("", "init")

	_, err := c.run("", "reconnect")
	assert.ErrorIs(t, err, service.ErrNoSyncLink)
}

func TestCLI_Generate(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("", "generate")
	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.NotContains(t, strings.TrimSpace(out), "\n")
}

// Every subcommand merges the persistent root flags into its own flag set;
// a clashing shorthand panics on first use.
func TestRootCmd_FlagShorthandsDoNotClash(t *testing.T) {
	root := newRootCmd(newRuntime(models.NewAppBuildInfo("test", "", ""), strings.NewReader(""), &bytes.Buffer{}))

	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		assert.NotPanics(t, func() {
			cmd.InheritedFlags()
			cmd.LocalFlags()
		}, cmd.CommandPath())
		for _, sub := range cmd.Commands() {
			walk(sub)
		}
	}
	walk(root)
}

func TestCLI_Version(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("", "--version")
	assert.Contains(t, out, "test")
}

// itemID finds the id column of the list row named name.
func itemID(t *testing.T, listing, name string) string {
	t.Helper()
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[2] == name {
			return fields[0]
		}
	}
	t.Fatalf("item %q not found in:\n%s", name, listing)
	return ""
}

func TestCLI_MirrorServeStopsWithContext(t *testing.T) {
	c := newCLI(t)
	dir := filepath.Join(c.dir, "mirror")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := c.runContext(ctx, "s3cret\n", "mirror-serve", "--address", "127.0.0.1:0", "--dir", dir, "--user", "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Serving "+dir+" at http://127.0.0.1:")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(filepath.Join(c.dir, "vault.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCLI_MirrorServeNeedsCredentials(t *testing.T) {
	c := newCLI(t)
	dir := filepath.Join(c.dir, "mirror")

	_, err := c.run("", "mirror-serve", "--address", "127.0.0.1:0", "--dir", dir)
	assert.ErrorIs(t, err, httphandler.ErrNoCredentials)

	_, err = c.run("\n", "mirror-serve", "--address", "127.0.0.1:0", "--dir", dir, "--user", "sync")
	assert.ErrorIs(t, err, httphandler.ErrNoCredentials)
}
