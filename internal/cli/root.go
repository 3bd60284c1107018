package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/tasklist/internal/config"
	"github.com/faizmokh/tasklist/internal/files"
	"github.com/faizmokh/tasklist/internal/logging"
	"github.com/faizmokh/tasklist/internal/tasklist"
	"github.com/faizmokh/tasklist/internal/ui"
	"github.com/faizmokh/tasklist/internal/version"
)

const msgExiting = "Tasklist exiting!"

// NewRootCommand creates the top-level Cobra command that runs the interactive task list.
func NewRootCommand(ctx context.Context, manager *files.Manager, clock tasklist.Clock) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasklist",
		Short:   "Manage a prioritized task list from your terminal.",
		Long:    "tasklist reads actions line by line (add, print, edit, delete, end) and keeps the list in a JSON file between runs.",
		Version: version.Info(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(manager)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			dataPath := manager.Path(cfg.DataFile)

			store, err := tasklist.NewReader(manager, cfg.DataFile).Load(ctx)
			if err != nil {
				return err
			}
			logger.Debug("loaded task list", "path", dataPath, "tasks", store.Len())

			table := ui.NewTable(cfg.UseColor(cmd.OutOrStdout()), clock)
			session := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), store, table, logger)
			if err := session.Run(ctx); err != nil {
				logger.Warn("session ended without saving", "path", dataPath, "err", err)
				return err
			}

			if err := tasklist.NewWriter(manager, cfg.DataFile).Save(ctx, store); err != nil {
				logger.Error("save failed", "path", dataPath, "err", err)
				return err
			}
			logger.Debug("saved task list", "path", dataPath, "tasks", store.Len())

			fmt.Fprintln(cmd.OutOrStdout(), msgExiting)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager, tasklist.SystemClock)
	return cmd.Execute()
}

// Main is a helper used by cmd/tasklist/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
