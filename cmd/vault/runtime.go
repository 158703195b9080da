package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/internal/store"
	"github.com/akgarhwal/vault/models"
)

// passwordEnv supplies the master password to non-interactive runs.
const passwordEnv = "VAULT_PASSWORD"

// runtime holds what a command needs once flags are parsed.
type runtime struct {
	info  models.AppBuildInfo
	flags *config.StructuredConfig

	in  *bufio.Reader
	fd  int
	out io.Writer

	cfg      *config.StructuredConfig
	log      *logger.Logger
	storage  store.Storage
	opener   *adapter.Opener
	services *service.ClientServices

	stopWorkers context.CancelFunc
}

func newRuntime(info models.AppBuildInfo, in io.Reader, out io.Writer) *runtime {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &runtime{info: info, in: bufio.NewReader(in), fd: fd, out: out}
}

// loadConfig merges flags, environment, file and defaults and creates the
// logger. Commands that never touch the vault stop here.
func (rt *runtime) loadConfig(cmd *cobra.Command) error {
	if rt.cfg != nil {
		return nil
	}

	cfg, err := config.GetStructuredConfig(rt.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rt.cfg = cfg
	rt.log = logger.NewClientLogger("vault", cfg.Log.File, cfg.Log.Level)

	// storage layers pick the logger up from the context
	cmd.SetContext(rt.log.WithContext(cmd.Context()))
	return nil
}

// setup loads the configuration and opens the storage. It is idempotent.
func (rt *runtime) setup(cmd *cobra.Command) error {
	if rt.services != nil {
		return nil
	}
	if err := rt.loadConfig(cmd); err != nil {
		return err
	}
	cfg := rt.cfg
	ctx := cmd.Context()

	var err error
	rt.storage, err = store.NewStorage(ctx, cfg.Storage, rt.log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	rt.opener = adapter.NewOpener(cfg.Sync, rt.log)
	rt.services = service.NewClientServices(rt.storage, rt.opener, service.ClientOptions{
		AutoLockTimeout: cfg.Session.AutoLockTimeout,
		KDFIterations:   cfg.Session.KDFIterations,
	}, rt.log)

	rt.log.Debug().Str("command", cmd.CommandPath()).Msg("runtime ready")
	return nil
}

// startWorkers runs the mirror worker until close. One-shot commands use it
// so their mutations reach the mirror before exit.
func (rt *runtime) startWorkers(ctx context.Context) {
	if rt.stopWorkers != nil {
		return
	}
	ctx, rt.stopWorkers = context.WithCancel(ctx)
	rt.services.Workers.Run(ctx)
}

func (rt *runtime) close() {
	if rt.services == nil {
		return
	}
	if rt.stopWorkers != nil {
		rt.stopWorkers()
		rt.services.Workers.Wait()
	}
	rt.services.Vault.Lock()
	if err := rt.storage.Close(); err != nil {
		rt.log.Error().Err(err).Msg("close storage")
	}
}

// unlock opens the vault with the password from the environment or the
// terminal.
func (rt *runtime) unlock(ctx context.Context) error {
	password, err := rt.readPassword("Master password: ")
	if err != nil {
		return err
	}
	return rt.services.Vault.Unlock(ctx, password)
}

func (rt *runtime) masterPassword(confirm bool) (string, error) {
	if v, ok := os.LookupEnv(passwordEnv); ok {
		return v, nil
	}
	first, err := rt.readSecret("Master password: ")
	if err != nil {
		return "", err
	}
	if !confirm {
		return first, nil
	}
	second, err := rt.readSecret("Repeat master password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("passwords do not match")
	}
	return first, nil
}

func (rt *runtime) readPassword(prompt string) (string, error) {
	if v, ok := os.LookupEnv(passwordEnv); ok {
		return v, nil
	}
	return rt.readSecret(prompt)
}

// readSecret reads without echo from a terminal and falls back to a plain
// line for piped input.
func (rt *runtime) readSecret(prompt string) (string, error) {
	if rt.fd >= 0 {
		fmt.Fprint(rt.out, prompt)
		b, err := term.ReadPassword(rt.fd)
		fmt.Fprintln(rt.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	return rt.readLine("")
}

func (rt *runtime) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(rt.out, prompt)
	}
	line, err := rt.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	if err == io.EOF && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirmer asks on the terminal unless assumeYes is set.
func (rt *runtime) confirmer(assumeYes bool) service.Confirmer {
	return service.ConfirmFunc(func(_ context.Context, message string) bool {
		if assumeYes {
			return true
		}
		answer, err := rt.readLine(message + " [y/N]: ")
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})
}
