package tripclock

import (
	"context"
	"log/slog"

	"tripclock/cmd/cli/config"
	"tripclock/cmd/cli/console"
	"tripclock/internal/clock"
	"tripclock/internal/format"
)

// Tripclock carries the shared dependencies handed to every command.
type Tripclock struct {
	Logger    *slog.Logger
	Clock     clock.Clock
	Config    *config.Cfg
	Formatter *format.Formatter
	Console   *console.Console
}

func NewTripclock(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Cfg,
	con *console.Console,
) *Tripclock {
	logger.DebugContext(ctx, "di: building", slog.Int("cities", len(cfg.Cities)))

	return &Tripclock{
		Logger:    logger,
		Clock:     clock.NewSystemClock(),
		Config:    cfg,
		Formatter: format.NewFormatter(cfg.Presets),
		Console:   con,
	}
}
