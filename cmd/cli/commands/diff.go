package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/cmd/cli/runner"
	"tripclock/internal/parse"
	"tripclock/internal/timezone"
	"tripclock/internal/tripclock"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewDiffCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	var atDate string
	var atTime string

	diffCmd := &cobra.Command{
		Use:   "diff <timezone1> <timezone2>",
		Short: "offset difference of timezone1 minus timezone2",
		Long:  "Offsets depend on daylight-saving rules, so --date/--time pick the instant the difference is computed at (UTC). Default is now.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runDiffCmd(atDate, atTime))
		},
	}

	diffCmd.Flags().StringVar(&atDate, "date", "", "date of the reference instant (YYYY-MM-DD)")
	diffCmd.Flags().StringVar(&atTime, "time", "00:00", "time of the reference instant (HH:MM, 24-hour)")

	diffCmd.SetOut(console.Stdout)
	diffCmd.SetErr(console.Stderr)

	return diffCmd
}

func runDiffCmd(atDate, atTime string) runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		args []string,
		di *tripclock.Tripclock,
	) error {
		at := timezone.NowUTC(di.Clock)

		if atDate != "" {
			parsed, err := parse.Wall(atDate, atTime, "UTC")

			if err != nil {
				return err
			}

			at = parsed
		}

		diff, err := timezone.Diff(args[0], args[1], at)

		if err != nil {
			return err
		}

		fmt.Fprintf(console.Stdout, "Time difference: %s\n", diff)

		return nil
	}
}
