// Package llm talks to the chat-completion model and interprets its answers.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sevigo/pr-verdict/internal/core"
)

// ChatClient is a core.ChatCompleter for OpenAI-compatible chat-completion
// endpoints.
type ChatClient struct {
	apiKey      string
	baseURL     string
	client      *http.Client
	maxAttempts int
	sleep       sleepFunc
	logger      *slog.Logger
}

// Option configures a ChatClient.
type Option func(*ChatClient)

// WithBaseURL points the client at another chat-completions URL.
func WithBaseURL(url string) Option {
	return func(c *ChatClient) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *ChatClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithMaxAttempts sets how many calls Complete may make.
func WithMaxAttempts(n int) Option {
	return func(c *ChatClient) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithSleeper replaces the function used to wait between attempts.
func WithSleeper(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *ChatClient) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// NewChatClient creates a ChatClient authenticated with apiKey.
func NewChatClient(apiKey string, logger *slog.Logger, opts ...Option) *ChatClient {
	c := &ChatClient{
		apiKey:      apiKey,
		baseURL:     DefaultChatURL,
		client:      &http.Client{Timeout: defaultHTTPTimeout},
		maxAttempts: DefaultMaxAttempts,
		sleep:       sleepContext,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends req and returns the content of the first choice.
func (c *ChatClient) Complete(ctx context.Context, req core.ChatRequest) (string, error) {
	c.logger.Debug("creating chat completion",
		"model", req.Model,
		"temperature", req.Temperature,
		"max_tokens", req.MaxTokens,
		"messages", len(req.Messages))

	payload, err := json.Marshal(chatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	var content string
	err = retryWithBackoff(ctx, c.logger, c.maxAttempts, c.sleep, func() error {
		var err error
		content, err = c.send(ctx, payload)
		return err
	})
	if err != nil {
		return "", err
	}
	return content, nil
}

func (c *ChatClient) send(ctx context.Context, payload []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return "", &TimeoutError{Err: err}
		}
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", &TimeoutError{Err: err}
		}
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", newAPIError(httpResp.StatusCode, respBody)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return result.Choices[0].Message.Content, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
	}
	return apiErr
}

type chatRequest struct {
	Model       string             `json:"model"`
	Messages    []core.ChatMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
	MaxTokens   int                `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message core.ChatMessage `json:"message"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
