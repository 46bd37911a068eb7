package commands

import (
	"context"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/cmd/cli/runner"
	"tripclock/internal/shell"
	"tripclock/internal/tripclock"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewShellCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "start the interactive menu",
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runShellCmd())
		},
	}

	shellCmd.SetOut(console.Stdout)
	shellCmd.SetErr(console.Stderr)

	return shellCmd
}

func runShellCmd() runner.RunE {
	return func(
		ctx context.Context,
		_ *console.Console,
		_ []string,
		di *tripclock.Tripclock,
	) error {
		return shell.NewShell(di).Run(ctx)
	}
}
