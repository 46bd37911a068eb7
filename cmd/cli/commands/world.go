package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/cmd/cli/runner"
	"tripclock/internal/timezone"
	"tripclock/internal/tripclock"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewWorldCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	worldCmd := &cobra.Command{
		Use:   "world",
		Short: "current time in every city of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runWorldCmd())
		},
	}

	worldCmd.SetOut(console.Stdout)
	worldCmd.SetErr(console.Stderr)

	return worldCmd
}

func runWorldCmd() runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *tripclock.Tripclock,
	) error {
		for _, city := range di.Config.Cities {
			now, err := timezone.NowIn(di.Clock, city.Zone)

			if err != nil {
				di.Logger.WarnContext(ctx, "world: skipping catalog city", slog.String("city", city.Name), slog.Any("error", err))
				continue
			}

			out, err := di.Formatter.Format(now, city.Preset)

			if err != nil {
				return err
			}

			fmt.Fprintf(console.Stdout, "%s: %s\n", city.Name, out)
		}

		return nil
	}
}
