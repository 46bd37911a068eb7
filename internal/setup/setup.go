package setup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"

	"tripclock/cmd/cli/console"
)

type ExecutionResult = int

const (
	Ok    ExecutionResult = 0
	NotOk ExecutionResult = -1
)

func initViper() (*viper.Viper, error) {
	viperInstance := viper.New()

	viperInstance.SetDefault("config", defaultConfigPath())
	viperInstance.SetDefault("log_level", "info")
	viperInstance.SetEnvPrefix("TRIPCLOCK")
	viperInstance.AutomaticEnv()

	return viperInstance, nil
}

func defaultConfigPath() string {
	dir, err := os.UserHomeDir()

	if err != nil {
		return "config.yaml"
	}

	return filepath.Join(dir, ".config", "tripclock", "config.yaml")
}

func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type ProgramExecutor func(ctx context.Context, logger *slog.Logger) error

type ExecutorBuilder func(
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) ProgramExecutor

func Run(buildExecutor ExecutorBuilder) ExecutionResult {
	start := time.Now()

	viper, err := initViper()

	level := new(slog.LevelVar)

	logger := slog.New(tint.NewHandler(
		os.Stderr,
		&tint.Options{Level: level},
	))

	defer func() {
		elapsed := time.Since(start)
		logger.Debug("cli: took", slog.Duration("elapsed", elapsed))
	}()

	if err != nil {
		logger.Error("main: could not setup configuration", slog.Any("err", err))
		return NotOk
	}

	level.Set(ParseLevel(viper.GetString("log_level")))

	console := &console.Console{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	ctx := context.Background()
	err = buildExecutor(viper, console, level)(ctx, logger)

	if err != nil {
		logger.Error("main: failed to execute program", slog.Any("err", err))
		return NotOk
	}

	logger.Debug("main: completed", slog.Int("status_code", Ok))

	return Ok
}
