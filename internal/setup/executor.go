package setup

import (
	"context"
	"log/slog"

	"github.com/spf13/viper"

	"tripclock/cmd/cli/commands"
	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
)

// NewCliExecutor loads the config, applies its log level and runs the
// cobra command tree.
func NewCliExecutor(
	viperInstance *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger) error {
		cfg, err := config.ReadYaml(viperInstance.GetString("config"))

		if err != nil {
			return err
		}

		if cfg.LogLevel != "" {
			level.Set(ParseLevel(cfg.LogLevel))
		}

		rootCmd := commands.NewRootCmd(ctx, logger, viperInstance, console, cfg)

		return rootCmd.Execute()
	}
}
