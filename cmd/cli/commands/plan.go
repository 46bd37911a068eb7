package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/cmd/cli/runner"
	"tripclock/internal/parse"
	"tripclock/internal/timezone"
	"tripclock/internal/tripclock"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewPlanCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan <departure-timezone> <arrival-timezone> <date> <time> <duration-hours>",
		Short: "compute the arrival time and zone difference for a flight",
		Args:  cobra.ExactArgs(5),
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runPlanCmd())
		},
	}

	planCmd.SetOut(console.Stdout)
	planCmd.SetErr(console.Stderr)

	return planCmd
}

func runPlanCmd() runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		args []string,
		_ *tripclock.Tripclock,
	) error {
		departureAt, err := parse.Wall(args[2], args[3], args[0])

		if err != nil {
			return err
		}

		hours, err := strconv.ParseFloat(args[4], 64)

		if err != nil || hours < 0 {
			return fmt.Errorf("plan: invalid flight duration %q, expected hours like 8.5", args[4])
		}

		arrivalAt, err := departureAt.Add(time.Duration(hours * float64(time.Hour)))

		if err != nil {
			return err
		}

		arrivalAt, err = timezone.Convert(arrivalAt, args[1])

		if err != nil {
			return err
		}

		diff, err := timezone.Diff(args[1], args[0], departureAt)

		if err != nil {
			return err
		}

		fmt.Fprintf(console.Stdout, "Departure: %s\n", departureAt)
		fmt.Fprintf(console.Stdout, "Arrival: %s\n", arrivalAt)
		fmt.Fprintf(console.Stdout, "Time difference: %s\n", diff)

		return nil
	}
}
