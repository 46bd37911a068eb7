package runner

import (
	"context"
	"fmt"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/internal/tripclock"

	"github.com/spf13/viper"
)

type RunE = func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *tripclock.Tripclock,
) error

// RunCmdE builds the dependency container and hands it to the command
// handler. Every cobra command funnels through here.
func RunCmdE(
	ctx context.Context,
	logger *slog.Logger,
	viperInstance *viper.Viper,
	console *console.Console,
	args []string,
	cfg *config.Cfg,
	runE RunE,
) error {
	logger.DebugContext(ctx, "runner: config", slog.String("path", viperInstance.GetString("config")))

	di := tripclock.NewTripclock(ctx, logger, cfg, console)

	err := runE(ctx, console, args, di)

	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}

	return nil
}
