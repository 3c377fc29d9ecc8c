// Package review runs a complete pull request review: fetch the diff, ask the
// model for a verdict and post it back to GitHub.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/pr-verdict/internal/core"
	"github.com/sevigo/pr-verdict/internal/gitutil"
	"github.com/sevigo/pr-verdict/internal/llm"
)

// VerdictRequester returns the model's free-text answer for a diff.
type VerdictRequester interface {
	RequestReview(ctx context.Context, diff string) (string, error)
}

// Options change how a single review run behaves.
type Options struct {
	// DryRun stops after the verdict is parsed; nothing is posted.
	DryRun bool
}

// Reviewer sequences the review pipeline.
type Reviewer struct {
	fetcher   core.DiffFetcher
	requester VerdictRequester
	publisher core.ReviewPublisher
	logger    *slog.Logger
}

// NewReviewer creates a Reviewer. publisher may be nil when only dry runs are
// performed.
func NewReviewer(fetcher core.DiffFetcher, requester VerdictRequester, publisher core.ReviewPublisher, logger *slog.Logger) *Reviewer {
	if fetcher == nil {
		panic("diff fetcher cannot be nil")
	}
	if requester == nil {
		panic("verdict requester cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Reviewer{
		fetcher:   fetcher,
		requester: requester,
		publisher: publisher,
		logger:    logger,
	}
}

// ReviewPullRequest reviews the pull request at prURL. The first failing step
// aborts the run; its typed error is wrapped and returned.
func (r *Reviewer) ReviewPullRequest(ctx context.Context, prURL string, opts Options) (*core.ReviewResult, error) {
	ref, err := gitutil.RequirePullRequestURL(prURL)
	if err != nil {
		return nil, err
	}
	if !opts.DryRun && r.publisher == nil {
		return nil, fmt.Errorf("no review publisher configured for %s", ref)
	}

	r.logger.Info("starting review", "pr", ref.String())

	diff, err := r.fetcher.Fetch(ctx, prURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diff: %w", err)
	}
	stats := gitutil.SummarizeDiff(diff, r.logger)
	r.logger.Info("diff fetched", "pr", ref.String(),
		"files", stats.Files,
		"additions", stats.Additions,
		"deletions", stats.Deletions,
	)

	answer, err := r.requester.RequestReview(ctx, diff)
	if err != nil {
		return nil, fmt.Errorf("failed to get review from model: %w", err)
	}
	r.logger.Debug("model answered", "pr", ref.String(), "response", answer)

	verdict, err := llm.ParseVerdict(answer)
	if err != nil {
		return nil, fmt.Errorf("failed to interpret model response: %w", err)
	}

	result := &core.ReviewResult{Ref: ref, Diff: stats, Verdict: verdict}
	if opts.DryRun {
		r.logger.Info("dry run, review not published", "pr", ref.String(), "event", verdict.Event())
		return result, nil
	}

	published, err := r.publisher.Publish(ctx, ref, verdict)
	if err != nil {
		return nil, fmt.Errorf("failed to publish review: %w", err)
	}
	result.Published = published

	r.logger.Info("review completed", "pr", ref.String(), "event", verdict.Event())
	return result, nil
}
