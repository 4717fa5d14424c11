package app

import (
	"log/slog"

	"wagecalc/internal/domain"
)

// App exposes the wired services to the CLI commands.
type App struct {
	Composer domain.Composer
	Earnings domain.Calculator
	Log      *slog.Logger
}

// New bundles the services behind their domain interfaces.
func New(c domain.Composer, e domain.Calculator, log *slog.Logger) *App {
	return &App{
		Composer: c,
		Earnings: e,
		Log:      log,
	}
}
