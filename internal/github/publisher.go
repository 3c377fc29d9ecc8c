package github

import (
	"context"
	"log/slog"

	"github.com/sevigo/pr-verdict/internal/core"
)

// ReviewPublisher posts verdicts as pull request reviews.
type ReviewPublisher struct {
	client Client
	logger *slog.Logger
}

// NewReviewPublisher creates a ReviewPublisher backed by client.
func NewReviewPublisher(client Client, logger *slog.Logger) *ReviewPublisher {
	return &ReviewPublisher{client: client, logger: logger}
}

// Publish approves the pull request for an accepted verdict and requests
// changes otherwise, using the explanation as the review body.
func (p *ReviewPublisher) Publish(ctx context.Context, ref core.PullRequestRef, verdict core.Verdict) (*core.PublishedReview, error) {
	submission := core.NewReviewSubmission(verdict)

	p.logger.Info("publishing review", "pr", ref.String(), "event", submission.Event)
	review, err := p.client.CreateReview(ctx, ref.Owner, ref.Repo, ref.Number, submission)
	if err != nil {
		return nil, err
	}

	p.logger.Info("review published", "pr", ref.String(), "review_id", review.ID, "state", review.State)
	return review, nil
}
