package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/cmd/cli/runner"
	"tripclock/internal/format"
	"tripclock/internal/timezone"
	"tripclock/internal/tripclock"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewNowCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	nowCmd := &cobra.Command{
		Use:   "now [timezone]",
		Short: "show the current time, in UTC or in the given IANA timezone",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runNowCmd())
		},
	}

	nowCmd.SetOut(console.Stdout)
	nowCmd.SetErr(console.Stderr)

	return nowCmd
}

func runNowCmd() runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		args []string,
		di *tripclock.Tripclock,
	) error {
		if len(args) == 0 {
			out, err := format.Render(timezone.NowUTC(di.Clock), format.PatternDisplay)

			if err != nil {
				return err
			}

			fmt.Fprintf(console.Stdout, "Current UTC time: %s\n", out)

			return nil
		}

		now, err := timezone.NowIn(di.Clock, args[0])

		if err != nil {
			return err
		}

		out, err := format.Render(now, format.PatternDisplay)

		if err != nil {
			return err
		}

		fmt.Fprintf(console.Stdout, "Current time in %s: %s\n", args[0], out)

		return nil
	}
}
