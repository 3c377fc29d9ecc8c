package core

import (
	"fmt"
)

// FetchError is returned when the pull request diff could not be downloaded.
type FetchError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching diff %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
}

// ChatCompletionError is returned when the chat-completion call failed with
// an error that is not retried, or when retries were used up.
type ChatCompletionError struct {
	Attempts  int
	Exhausted bool
	Err       error
}

func (e *ChatCompletionError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("chat completion failed after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("chat completion failed: %v", e.Err)
}

func (e *ChatCompletionError) Unwrap() error { return e.Err }

// NoResponseError is returned when every attempt was rate limited and no
// response was ever received.
type NoResponseError struct {
	Attempts int
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("no response from chat completion service after %d attempts", e.Attempts)
}

// InvalidVerdictError is returned when the model answer does not start with a
// recognised decision.
type InvalidVerdictError struct {
	Text string
}

func (e *InvalidVerdictError) Error() string {
	return fmt.Sprintf("invalid response: %s. It must start with either 'acceptable' or 'request changes'", e.Text)
}

// PublishError is returned when GitHub rejected the review.
type PublishError struct {
	StatusCode int
	Body       string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publishing review: unexpected status %d: %s", e.StatusCode, e.Body)
}

// MalformedURLError is returned for URLs that are not GitHub pull request links.
type MalformedURLError struct {
	URL string
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("invalid pull request URL format: %s", e.URL)
}
