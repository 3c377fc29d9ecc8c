package wire

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/wire"

	"github.com/sevigo/pr-verdict/internal/app"
	"github.com/sevigo/pr-verdict/internal/config"
	"github.com/sevigo/pr-verdict/internal/core"
	"github.com/sevigo/pr-verdict/internal/github"
	"github.com/sevigo/pr-verdict/internal/gitutil"
	"github.com/sevigo/pr-verdict/internal/llm"
	"github.com/sevigo/pr-verdict/internal/logger"
	"github.com/sevigo/pr-verdict/internal/review"
)

var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	review.NewReviewer,
	gitutil.NewDiffFetcher,
	llm.NewPromptManager,
	llm.NewReviewRequester,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	provideHTTPClient,
	provideChatClient,
	provideRequestOptions,
	provideGuidelines,
	provideReviewPublisher,
	wire.Bind(new(core.DiffFetcher), new(*gitutil.DiffFetcher)),
	wire.Bind(new(core.ChatCompleter), new(*llm.ChatClient)),
	wire.Bind(new(review.VerdictRequester), new(*llm.ReviewRequester)),
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	return logger.OutputWriter(cfg.Logging.Output)
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return newHTTPClient(cfg.HTTPTimeout)
}

func provideChatClient(cfg *config.Config, logger *slog.Logger) *llm.ChatClient {
	return llm.NewChatClient(cfg.LLM.APIKey, logger,
		llm.WithBaseURL(cfg.LLM.BaseURL),
		llm.WithHTTPClient(newHTTPClient(cfg.LLM.Timeout)),
		llm.WithMaxAttempts(cfg.LLM.MaxAttempts),
	)
}

func provideRequestOptions(cfg *config.Config) llm.RequestOptions {
	return llm.RequestOptions{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}
}

func provideGuidelines(cfg *config.Config) (*core.ReviewGuidelines, error) {
	return config.LoadGuidelines(cfg.GuidelinesFile)
}

// provideReviewPublisher returns a nil publisher when no GitHub token is
// configured; the reviewer then only supports dry runs.
func provideReviewPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.ReviewPublisher, error) {
	if cfg.GitHub.Token == "" {
		logger.Debug("GITHUB_REVIEWER_TOKEN not set, publishing disabled")
		return nil, nil
	}
	client, err := github.NewPATClient(ctx, cfg.GitHub.Token, cfg.GitHub.APIURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return nil, err
	}
	return github.NewReviewPublisher(client, logger), nil
}
