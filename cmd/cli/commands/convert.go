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

func NewConvertCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert <date> <time> <source-timezone> <target-timezone>",
		Short: "re-express a timestamp in another IANA timezone",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runConvertCmd())
		},
	}

	convertCmd.SetOut(console.Stdout)
	convertCmd.SetErr(console.Stderr)

	return convertCmd
}

func runConvertCmd() runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		args []string,
		_ *tripclock.Tripclock,
	) error {
		instant, err := parse.Wall(args[0], args[1], args[2])

		if err != nil {
			return err
		}

		converted, err := timezone.Convert(instant, args[3])

		if err != nil {
			return err
		}

		fmt.Fprintf(console.Stdout, "%s in %s is %s in %s\n", instant, args[2], converted, args[3])

		return nil
	}
}
