package main

import (
	"log/slog"
	"os"

	"tripclock/cmd/cli/console"
	"tripclock/internal/setup"

	"github.com/spf13/viper"
)

func cli(viper *viper.Viper, console *console.Console, level *slog.LevelVar) setup.ProgramExecutor {
	return setup.NewCliExecutor(viper, console, level)
}

func main() {
	result := setup.Run(cli)

	if result == setup.NotOk {
		os.Exit(1)
	}
}
