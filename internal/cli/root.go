package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	browse := newBrowseCmd()

	root := &cobra.Command{
		Use:           "reelium [username]",
		Short:         "Terminal reel explorer",
		Long:          "Reelium: fetch a profile's reels and browse them in a grid and an immersive viewer.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          browse.RunE,
	}

	root.PersistentFlags().StringP("backend", "b", "", "Base URL of the scraping backend (env REELIUM_BACKEND_URL)")
	root.PersistentFlags().String("log-file", "", "Write logs to this file (env LOG_FILE; default: discard)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	addBrowseFlags(root)

	// Add subcommands
	root.AddCommand(browse)
	return root
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
