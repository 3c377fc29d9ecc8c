// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/pr-verdict/internal/core"
)

// Client defines the GitHub operations the reviewer needs.
type Client interface {
	CreateReview(ctx context.Context, owner, repo string, number int, submission core.ReviewSubmission) (*core.PublishedReview, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client to provide a focused,
// testable interface for application-specific GitHub operations.
func NewGitHubClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a GitHub client that sends token as a bearer
// credential. An empty apiURL keeps the public api.github.com endpoint.
func NewPATClient(ctx context.Context, token, apiURL string, timeout time.Duration, logger *slog.Logger) (Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: "Bearer"},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = timeout

	client := github.NewClient(tc)
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GitHub API URL %q: %w", apiURL, err)
		}
		client.BaseURL = baseURL
	}

	return &gitHubClient{client: client, logger: logger}, nil
}

// CreateReview submits a pull request review with the given event and body.
func (g *gitHubClient) CreateReview(ctx context.Context, owner, repo string, number int, submission core.ReviewSubmission) (*core.PublishedReview, error) {
	reviewRequest := &github.PullRequestReviewRequest{
		Body:  github.Ptr(submission.Body),
		Event: github.Ptr(string(submission.Event)),
	}

	review, resp, err := g.client.PullRequests.CreateReview(ctx, owner, repo, number, reviewRequest)
	if err != nil {
		g.logger.Error("failed to create pull request review", "owner", owner, "repo", repo, "pr", number, "error", err)
		if resp != nil && resp.Response != nil {
			return nil, &core.PublishError{StatusCode: resp.StatusCode, Body: errorBody(err)}
		}
		return nil, fmt.Errorf("failed to create pull request review: %w", err)
	}

	return &core.PublishedReview{
		ID:      review.GetID(),
		State:   review.GetState(),
		HTMLURL: review.GetHTMLURL(),
	}, nil
}

func errorBody(err error) string {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		if len(ghErr.Errors) > 0 {
			return fmt.Sprintf("%s: %v", ghErr.Message, ghErr.Errors)
		}
		return ghErr.Message
	}
	return err.Error()
}
