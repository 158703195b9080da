package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/akgarhwal/vault/internal/crypto"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/models"
)

func newInitCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := rt.masterPassword(true)
			if err != nil {
				return err
			}
			if err = rt.services.Vault.Create(cmd.Context(), password); err != nil {
				return err
			}
			fmt.Fprintln(rt.out, "Vault created.")
			return nil
		},
	}
}

func newListCmd(rt *runtime) *cobra.Command {
	var filter service.ItemFilter
	var typ string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.unlock(cmd.Context()); err != nil {
				return err
			}
			filter.Type = models.ItemType(typ)
			items, err := rt.services.Items.Filter(filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(rt.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tNAME\tLOGIN")
			for _, it := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ID, it.Type, it.Name, it.Login())
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "Only items of this type: password or card")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "Case-insensitive name filter")
	return cmd
}

func newGetCmd(rt *runtime) *cobra.Command {
	var reveal, copySecret bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.unlock(cmd.Context()); err != nil {
				return err
			}
			item, err := rt.services.Items.Get(args[0])
			if err != nil {
				return err
			}
			printItem(rt, item, reveal)

			if copySecret {
				if err = clipboard.WriteAll(item.Secret()); err != nil {
					return fmt.Errorf("clipboard: %w", err)
				}
				fmt.Fprintln(rt.out, "Secret copied to the clipboard.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print secrets in clear text")
	cmd.Flags().BoolVar(&copySecret, "copy", false, "Copy the password or card number to the clipboard")
	return cmd
}

func printItem(rt *runtime, it models.DecryptedItem, reveal bool) {
	secret := func(v string) string {
		if reveal || v == "" {
			return v
		}
		return strings.Repeat("*", 8)
	}

	w := tabwriter.NewWriter(rt.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", it.ID)
	fmt.Fprintf(w, "Type\t%s\n", it.Type)
	fmt.Fprintf(w, "Name\t%s\n", it.Name)
	if it.Type == models.ItemTypeCard {
		fmt.Fprintf(w, "Holder\t%s\n", it.CardHolder)
		fmt.Fprintf(w, "Number\t%s\n", secret(it.CardNumber))
		fmt.Fprintf(w, "Expiry\t%s\n", it.CardExpiry)
		fmt.Fprintf(w, "CVV\t%s\n", secret(it.CardCVV))
	} else {
		fmt.Fprintf(w, "Username\t%s\n", it.Username)
		fmt.Fprintf(w, "Password\t%s\n", secret(it.Password))
		fmt.Fprintf(w, "URL\t%s\n", it.URL)
	}
	_ = w.Flush()
}

func newAddCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
	}
	cmd.AddCommand(newAddPasswordCmd(rt), newAddCardCmd(rt))
	return cmd
}

func newAddPasswordCmd(rt *runtime) *cobra.Command {
	var p models.ItemPayload
	var generate bool

	cmd := &cobra.Command{
		Use:   "password <name>",
		Short: "Add login credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.unlock(cmd.Context()); err != nil {
				return err
			}

			password, err := itemPassword(rt, generate)
			if err != nil {
				return err
			}
			payload := models.NewPasswordPayload(args[0], p.Username, password, p.URL)
			return addItem(cmd.Context(), rt, payload)
		},
	}
	cmd.Flags().StringVarP(&p.Username, "username", "u", "", "Login name")
	cmd.Flags().StringVar(&p.URL, "url", "", "Site address")
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "Generate a random password")
	return cmd
}

func itemPassword(rt *runtime, generate bool) (string, error) {
	if generate {
		return crypto.GeneratePassword()
	}
	return rt.readSecret("Item password: ")
}

func newAddCardCmd(rt *runtime) *cobra.Command {
	var p models.ItemPayload

	cmd := &cobra.Command{
		Use:   "card <name>",
		Short: "Add a payment card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.unlock(cmd.Context()); err != nil {
				return err
			}
			payload := models.NewCardPayload(args[0], p.CardHolder, p.CardNumber, p.CardExpiry, p.CardCVV)
			return addItem(cmd.Context(), rt, payload)
		},
	}
	cmd.Flags().StringVar(&p.CardHolder, "holder", "", "Card holder name")
	cmd.Flags().StringVar(&p.CardNumber, "number", "", "Card number")
	cmd.Flags().StringVar(&p.CardExpiry, "expiry", "", "Expiry date as MM/YY")
	cmd.Flags().StringVar(&p.CardCVV, "cvv", "", "Security code")
	return cmd
}

func addItem(ctx context.Context, rt *runtime, payload models.ItemPayload) error {
	rt.startWorkers(ctx)
	item, err := rt.services.Items.Add(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "Added %s (%s).\n", item.Name, item.ID)
	return nil
}

func newDeleteCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := rt.unlock(ctx); err != nil {
				return err
			}
			item, err := rt.services.Items.Get(args[0])
			if err != nil {
				return err
			}
			if !rt.confirmer(yes).Confirm(ctx, fmt.Sprintf("Delete %q?", item.Name)) {
				return service.ErrNotConfirmed
			}

			rt.startWorkers(ctx)
			if err = rt.services.Items.Delete(ctx, item.ID); err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "Deleted %s.\n", item.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newGenerateCmd(rt *runtime) *cobra.Command {
	var copyIt bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		// works without a vault
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(_ *cobra.Command, _ []string) error {
			pw, err := crypto.GeneratePassword()
			if err != nil {
				return err
			}
			if copyIt {
				if err = clipboard.WriteAll(pw); err != nil {
					return fmt.Errorf("clipboard: %w", err)
				}
				fmt.Fprintln(rt.out, "Password copied to the clipboard.")
				return nil
			}
			fmt.Fprintln(rt.out, pw)
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyIt, "copy", false, "Copy to the clipboard instead of printing")
	return cmd
}
