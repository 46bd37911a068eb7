package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/cmd/cli/runner"
	"tripclock/internal/parse"
	"tripclock/internal/tripclock"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewFormatCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format <date> <time> <timezone> <preset-or-pattern>",
		Short: "render a timestamp with a named preset or a token pattern",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runFormatCmd())
		},
	}

	formatCmd.SetOut(console.Stdout)
	formatCmd.SetErr(console.Stderr)

	return formatCmd
}

func runFormatCmd() runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		args []string,
		di *tripclock.Tripclock,
	) error {
		instant, err := parse.Wall(args[0], args[1], args[2])

		if err != nil {
			return err
		}

		out, err := di.Formatter.Format(instant, args[3])

		if err != nil {
			return err
		}

		fmt.Fprintf(console.Stdout, "%s\n", out)

		return nil
	}
}
