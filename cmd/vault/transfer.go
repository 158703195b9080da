package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akgarhwal/vault/internal/service"
)

func newExportCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the encrypted vault to a portable file",
		Long:  "Writes the vault metadata and every encrypted item. Nothing is decrypted, so no password is needed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := rt.services.Transfer
			doc, err := t.Export(cmd.Context())
			if err != nil {
				return err
			}
			data, err := t.MarshalDocument(doc)
			if err != nil {
				return err
			}
			if err = os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(rt.out, "Exported %d items to %s.\n", len(doc.Items), args[0])
			return nil
		},
	}
}

func newImportCmd(rt *runtime) *cobra.Command {
	var yes, showDiff bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the local vault with an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}

			t := rt.services.Transfer
			doc, err := t.ParseDocument(data)
			if err != nil {
				return err
			}
			if showDiff {
				preview, err := t.Preview(ctx, doc)
				if err != nil {
					return err
				}
				fmt.Fprint(rt.out, preview.Diff)
			}

			rt.startWorkers(ctx)
			preview, err := t.Import(ctx, doc, rt.confirmer(yes))
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "Imported %d items.\n", preview.ItemCount)
			if preview.ForeignVault {
				fmt.Fprintln(rt.out, "Unlock the vault with the master password of the imported file.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print the item id diff before confirming")
	return cmd
}

func newResetCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase the vault and every item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := rt.unlock(ctx); err != nil {
				return err
			}
			if err := rt.services.Vault.Reset(ctx, rt.confirmer(yes)); err != nil {
				if errors.Is(err, service.ErrNotConfirmed) {
					fmt.Fprintln(rt.out, "Nothing was erased.")
				}
				return err
			}
			fmt.Fprintln(rt.out, "Vault erased.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
