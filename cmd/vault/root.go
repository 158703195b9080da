package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/akgarhwal/vault/internal/client"
	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/tui"
	"github.com/akgarhwal/vault/models"
)

// execute builds the command tree and runs it with args.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer, info models.AppBuildInfo) error {
	rt := newRuntime(info, in, out)
	defer rt.close()

	root := newRootCmd(rt)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func newRootCmd(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "vault",
		Short:         "Local encrypted secret vault",
		Long:          "Stores passwords and payment cards encrypted with a key derived from one master password.\nRun without a command to open the terminal UI.",
		Version:       rt.info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, rt)
		},
	}
	rt.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newTUICmd(rt),
		newInitCmd(rt),
		newListCmd(rt),
		newGetCmd(rt),
		newAddCmd(rt),
		newDeleteCmd(rt),
		newGenerateCmd(rt),
		newExportCmd(rt),
		newImportCmd(rt),
		newLinkCmd(rt),
		newReconnectCmd(rt),
		newUnlinkCmd(rt),
		newStatusCmd(rt),
		newResetCmd(rt),
		newMirrorServeCmd(rt),
	)
	return root
}

func newTUICmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, rt)
		},
	}
}

func runTUI(cmd *cobra.Command, rt *runtime) error {
	ui, err := tui.New(rt.services, rt.opener, rt.info, rt.log)
	if err != nil {
		return err
	}
	a, err := client.NewApp(rt.services, ui, rt.log)
	if err != nil {
		return err
	}
	return a.Run(cmd.Context())
}
