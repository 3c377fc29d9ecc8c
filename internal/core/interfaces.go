// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are kept abstract so the
// review pipeline can be assembled from interchangeable implementations.
package core

import (
	"context"
)

// DiffFetcher downloads the unified diff of a pull request.
//
//go:generate mockgen -destination=../../mocks/mock_core.go -package=mocks . ChatCompleter,DiffFetcher,ReviewPublisher
type DiffFetcher interface {
	// Fetch returns the raw diff text for the given pull request URL.
	Fetch(ctx context.Context, prURL string) (string, error)
}

// ChatCompleter sends a conversation to a chat-completion model and returns
// the text of the first choice.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// ReviewPublisher posts a verdict as a pull request review.
type ReviewPublisher interface {
	Publish(ctx context.Context, ref PullRequestRef, verdict Verdict) (*PublishedReview, error)
}
