// Package app holds the wired components of the reviewer.
package app

import (
	"log/slog"

	"github.com/sevigo/pr-verdict/internal/config"
	"github.com/sevigo/pr-verdict/internal/review"
)

// App holds the main application components.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Reviewer *review.Reviewer
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger, reviewer *review.Reviewer) *App {
	logger.Debug("initialized reviewer",
		"model", cfg.LLM.Model,
		"max_attempts", cfg.LLM.MaxAttempts,
		"guidelines_file", cfg.GuidelinesFile,
		"publishing", cfg.GitHub.Token != "")

	return &App{
		Cfg:      cfg,
		Logger:   logger,
		Reviewer: reviewer,
	}
}
