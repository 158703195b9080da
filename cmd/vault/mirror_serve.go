package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akgarhwal/vault/internal/adapter"
	httphandler "github.com/akgarhwal/vault/internal/handler/http"
	"github.com/akgarhwal/vault/internal/server"
	"github.com/akgarhwal/vault/internal/service"
)

func newMirrorServeCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror-serve",
		Short: "Serve a directory as an HTTP mirror target",
		Long: "Accepts encrypted exports uploaded by `vault link http://HOST/mirror/NAME`.\n" +
			"Requests need basic auth; the password is read from VAULT_MIRROR_PASSWORD or the terminal.\n" +
			"Uploads are checked to be export documents and stored with mode 0600.",
		Args: cobra.NoArgs,
		// needs no vault
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMirrorServe(cmd, rt)
		},
	}

	f := cmd.Flags()
	f.StringVar(&rt.flags.Mirror.Address, "address", "", "Listen address (default 127.0.0.1:8484)")
	f.StringVar(&rt.flags.Mirror.Dir, "dir", "", "Directory that keeps the mirror files")
	f.StringVarP(&rt.flags.Mirror.User, "user", "u", "", "Basic auth user")
	f.Int64Var(&rt.flags.Mirror.MaxBodySize, "max-body-size", 0, "Largest accepted upload in bytes")
	return cmd
}

func runMirrorServe(cmd *cobra.Command, rt *runtime) error {
	cfg := rt.cfg.Mirror
	if cfg.User == "" {
		return fmt.Errorf("%w: set --user or VAULT_MIRROR_USER", httphandler.ErrNoCredentials)
	}
	if cfg.Password == "" {
		password, err := rt.readSecret("Mirror password: ")
		if err != nil {
			return err
		}
		cfg.Password = password
	}

	mirrors, err := adapter.NewMirrorDir(cfg.Dir)
	if err != nil {
		return err
	}
	h, err := httphandler.NewHandler(mirrors, service.ParseExportDocument, httphandler.Options{
		User:        cfg.User,
		Password:    cfg.Password,
		MaxBodySize: cfg.MaxBodySize,
		Info:        rt.info,
	}, rt.log)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(h.Init(), cfg, rt.log)
	if err != nil {
		return err
	}

	fmt.Fprintf(rt.out, "Serving %s at http://%s/mirror/<name>\n", cfg.Dir, srv.Addr())
	return srv.Run(cmd.Context())
}
