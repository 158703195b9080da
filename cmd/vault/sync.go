package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/models"
)

func newLinkCmd(rt *runtime) *cobra.Command {
	var label, user string

	cmd := &cobra.Command{
		Use:   "link <path|url>",
		Short: "Mirror the encrypted vault to a file",
		Long: "Links a local file or an http(s) WebDAV file as the vault mirror and writes the current export to it.\n" +
			"With --user the HTTP password is read from the terminal and kept in the OS keyring.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			kind := adapter.KindForTarget(target)

			if user != "" {
				if kind != models.SyncKindHTTP {
					return fmt.Errorf("--user only applies to http(s) targets")
				}
				password, err := rt.readSecret("HTTP password: ")
				if err != nil {
					return err
				}
				if err = rt.opener.Credentials().Save(target, user, password); err != nil {
					return err
				}
			}

			capability, err := rt.opener.Open(models.SyncLink{Kind: kind, Target: target})
			if err != nil {
				return err
			}
			if err = rt.services.Sync.LinkNew(cmd.Context(), capability, label); err != nil {
				return err
			}
			link, _ := rt.services.Sync.Link()
			fmt.Fprintf(rt.out, "Linked %s (%s).\n", link.Label, link.Kind)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Display name of the mirror")
	cmd.Flags().StringVar(&user, "user", "", "HTTP basic auth user stored in the OS keyring")
	return cmd
}

func newReconnectCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reconnect",
		Short: "Re-establish access to the mirror and rewrite it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := rt.services.Sync.Reconnect(ctx); err != nil {
				return err
			}
			if err := rt.services.Sync.OnMutation(ctx); err != nil {
				return err
			}
			fmt.Fprintln(rt.out, "Mirror is up to date.")
			return nil
		},
	}
}

func newUnlinkCmd(rt *runtime) *cobra.Command {
	var forgetCreds bool

	cmd := &cobra.Command{
		Use:   "unlink",
		Short: "Stop mirroring; the mirror file is left in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			// load the link so its target is known
			_, err := rt.services.Sync.Reconnect(ctx)
			if errors.Is(err, service.ErrNoSyncLink) {
				fmt.Fprintln(rt.out, "No mirror is linked.")
				return nil
			}
			link, linked := rt.services.Sync.Link()

			if err = rt.services.Sync.Unlink(ctx); err != nil {
				return err
			}
			if forgetCreds && linked && link.Kind == models.SyncKindHTTP {
				if err = rt.opener.Credentials().Delete(link.Target); err != nil {
					return err
				}
			}
			fmt.Fprintln(rt.out, "Mirror unlinked.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&forgetCreds, "forget-credentials", false, "Also remove stored HTTP credentials")
	return cmd
}

func newStatusCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the vault and mirror state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			state, err := rt.services.Vault.State(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "Vault:  %s\n", state)
			fmt.Fprintf(rt.out, "Store:  %s %s\n", rt.cfg.Storage.Driver, rt.cfg.Storage.Path)

			_, err = rt.services.Sync.Reconnect(ctx)
			switch {
			case errors.Is(err, service.ErrNoSyncLink):
				fmt.Fprintln(rt.out, "Mirror: none")
				return nil
			case err != nil:
				rt.log.Warn().Err(err).Msg("mirror check failed")
			}

			link, _ := rt.services.Sync.Link()
			fmt.Fprintf(rt.out, "Mirror: %s %s (%s)\n", link.Kind, link.Target, rt.services.Sync.Status())
			return nil
		},
	}
}
