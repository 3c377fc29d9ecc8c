package llm

import "time"

const (
	// DefaultChatURL is the OpenAI chat-completions endpoint.
	DefaultChatURL = "https://api.openai.com/v1/chat/completions"

	// DefaultMaxAttempts bounds the number of chat-completion calls per Complete.
	DefaultMaxAttempts = 10

	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4"

	defaultHTTPTimeout = 5 * time.Minute
)

const (
	acceptablePrefix     = "acceptable"
	requestChangesPrefix = "request changes"
)
