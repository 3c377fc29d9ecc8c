package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/pr-verdict/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	LLM            LLMConfig
	GitHub         GitHubConfig
	Logging        logger.Config
	HTTPTimeout    time.Duration
	GuidelinesFile string
}

// LLMConfig configures the chat-completion model.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxAttempts int
	Timeout     time.Duration
}

// GitHubConfig configures access to the GitHub REST API.
type GitHubConfig struct {
	Token  string
	APIURL string
}

// LoadConfig loads the configuration and validates it with Validate.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg, err := Load(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads configuration from environment variables and an optional
// config file (CONFIG_FILE, ".env" by default) and applies defaults. The
// result is not validated.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("CONFIG_FILE", ".env")
	v.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("LLM_MODEL", "gpt-4")
	v.SetDefault("LLM_TEMPERATURE", 0.0)
	v.SetDefault("LLM_MAX_TOKENS", 0)
	v.SetDefault("LLM_MAX_ATTEMPTS", 10)
	v.SetDefault("LLM_TIMEOUT", "5m")
	v.SetDefault("GITHUB_API_URL", "https://api.github.com/")
	v.SetDefault("HTTP_TIMEOUT", "60s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stderr")

	v.AutomaticEnv()

	v.SetConfigFile(v.GetString("CONFIG_FILE"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		slog.Debug("no config file found, using environment only", "file", v.GetString("CONFIG_FILE"))
	}

	cfg := &Config{
		LLM: LLMConfig{
			APIKey:      v.GetString("OPENAI_API_KEY"),
			BaseURL:     v.GetString("LLM_BASE_URL"),
			Model:       v.GetString("LLM_MODEL"),
			Temperature: v.GetFloat64("LLM_TEMPERATURE"),
			MaxTokens:   v.GetInt("LLM_MAX_TOKENS"),
			MaxAttempts: v.GetInt("LLM_MAX_ATTEMPTS"),
			Timeout:     v.GetDuration("LLM_TIMEOUT"),
		},
		GitHub: GitHubConfig{
			Token:  v.GetString("GITHUB_REVIEWER_TOKEN"),
			APIURL: v.GetString("GITHUB_API_URL"),
		},
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		HTTPTimeout:    v.GetDuration("HTTP_TIMEOUT"),
		GuidelinesFile: v.GetString("GUIDELINES_FILE"),
	}
	return cfg, nil
}

// Validate checks the settings every review needs.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY must be set")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM_MODEL must not be empty")
	}
	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("LLM_MAX_ATTEMPTS must be at least 1, got %d", c.LLM.MaxAttempts)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %g", c.LLM.Temperature)
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must not be negative, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Timeout <= 0 || c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

// ValidateForPublishing checks the settings needed to post reviews.
func (c *Config) ValidateForPublishing() error {
	if c.GitHub.Token == "" {
		return fmt.Errorf("GITHUB_REVIEWER_TOKEN must be set")
	}
	return nil
}
