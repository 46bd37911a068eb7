package commands

import (
	"context"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd assembles the command tree. Running the bare binary starts
// the interactive shell.
func NewRootCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	shellCmd := NewShellCmd(ctx, logger, viper, console, cfg)

	rootCmd := &cobra.Command{
		Use:           "tripclock",
		Short:         "timestamps, timezone conversions and differences for travel planning",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          shellCmd.RunE,
	}

	rootCmd.SetOut(console.Stdout)
	rootCmd.SetErr(console.Stderr)
	rootCmd.SetIn(console.Stdin)

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(NewNowCmd(ctx, logger, viper, console, cfg))
	rootCmd.AddCommand(NewConvertCmd(ctx, logger, viper, console, cfg))
	rootCmd.AddCommand(NewFormatCmd(ctx, logger, viper, console, cfg))
	rootCmd.AddCommand(NewDiffCmd(ctx, logger, viper, console, cfg))
	rootCmd.AddCommand(NewWorldCmd(ctx, logger, viper, console, cfg))
	rootCmd.AddCommand(NewPlanCmd(ctx, logger, viper, console, cfg))

	return rootCmd
}
