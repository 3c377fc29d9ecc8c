package review

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-verdict/internal/core"
	"github.com/sevigo/pr-verdict/internal/llm"
	"github.com/sevigo/pr-verdict/mocks"
)

const testPRURL = "https://github.com/foo/bar/pull/116"

type fixture struct {
	fetcher   *mocks.MockDiffFetcher
	completer *mocks.MockChatCompleter
	publisher *mocks.MockReviewPublisher
	reviewer  *Reviewer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pm, err := llm.NewPromptManager()
	require.NoError(t, err)

	f := &fixture{
		fetcher:   mocks.NewMockDiffFetcher(ctrl),
		completer: mocks.NewMockChatCompleter(ctrl),
		publisher: mocks.NewMockReviewPublisher(ctrl),
	}
	requester := llm.NewReviewRequester(f.completer, pm, nil, llm.RequestOptions{}, logger)
	f.reviewer = NewReviewer(f.fetcher, requester, f.publisher, logger)
	return f
}

func TestReviewPullRequest_Approve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ref := core.PullRequestRef{Owner: "foo", Repo: "bar", Number: 116}
	published := &core.PublishedReview{ID: 9, State: "APPROVED"}

	gomock.InOrder(
		f.fetcher.EXPECT().Fetch(ctx, testPRURL).Return("+diff", nil),
		f.completer.EXPECT().Complete(ctx, gomock.Any()).Return("acceptable - looks good", nil),
		f.publisher.EXPECT().
			Publish(ctx, ref, core.Verdict{Accepted: true, Explanation: " - looks good"}).
			Return(published, nil),
	)

	result, err := f.reviewer.ReviewPullRequest(ctx, testPRURL, Options{})
	require.NoError(t, err)
	assert.Equal(t, ref, result.Ref)
	assert.True(t, result.Verdict.Accepted)
	assert.Equal(t, published, result.Published)
}

func TestReviewPullRequest_RequestChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.fetcher.EXPECT().Fetch(ctx, testPRURL).Return("+diff", nil)
	f.completer.EXPECT().Complete(ctx, gomock.Any()).Return("  Request Changes: add tests\n", nil)
	f.publisher.EXPECT().
		Publish(ctx, gomock.Any(), core.Verdict{Accepted: false, Explanation: ": add tests"}).
		Return(&core.PublishedReview{ID: 1}, nil)

	result, err := f.reviewer.ReviewPullRequest(ctx, testPRURL, Options{})
	require.NoError(t, err)
	assert.Equal(t, core.EventRequestChanges, result.Verdict.Event())
}

func TestReviewPullRequest_FetchFailureStopsBeforeModel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.fetcher.EXPECT().Fetch(ctx, testPRURL).
		Return("", &core.FetchError{URL: testPRURL + ".diff", StatusCode: 404, Body: "Not Found"})
	f.completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.reviewer.ReviewPullRequest(ctx, testPRURL, Options{})

	var fetchErr *core.FetchError
	require.True(t, errors.As(err, &fetchErr), "got %v", err)
	assert.Equal(t, 404, fetchErr.StatusCode)
}

func TestReviewPullRequest_MalformedURL(t *testing.T) {
	f := newFixture(t)

	_, err := f.reviewer.ReviewPullRequest(context.Background(), "https://github.com/foo/bar/issues/1", Options{})

	var urlErr *core.MalformedURLError
	require.True(t, errors.As(err, &urlErr), "got %v", err)
}

func TestReviewPullRequest_InvalidVerdict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.fetcher.EXPECT().Fetch(ctx, testPRURL).Return("+diff", nil)
	f.completer.EXPECT().Complete(ctx, gomock.Any()).Return("Maybe?", nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.reviewer.ReviewPullRequest(ctx, testPRURL, Options{})

	var invalid *core.InvalidVerdictError
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Equal(t, "Maybe?", invalid.Text)
}

func TestReviewPullRequest_ModelFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.fetcher.EXPECT().Fetch(ctx, testPRURL).Return("+diff", nil)
	f.completer.EXPECT().Complete(ctx, gomock.Any()).Return("", &core.NoResponseError{Attempts: 10})

	_, err := f.reviewer.ReviewPullRequest(ctx, testPRURL, Options{})

	var noResp *core.NoResponseError
	require.True(t, errors.As(err, &noResp), "got %v", err)
}

func TestReviewPullRequest_PublishFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.fetcher.EXPECT().Fetch(ctx, testPRURL).Return("+diff", nil)
	f.completer.EXPECT().Complete(ctx, gomock.Any()).Return("Acceptable", nil)
	f.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).
		Return(nil, &core.PublishError{StatusCode: 422, Body: "Unprocessable Entity"})

	result, err := f.reviewer.ReviewPullRequest(ctx, testPRURL, Options{})
	assert.Nil(t, result)

	var pubErr *core.PublishError
	require.True(t, errors.As(err, &pubErr), "got %v", err)
	assert.Equal(t, 422, pubErr.StatusCode)
}

func TestReviewPullRequest_DryRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.fetcher.EXPECT().Fetch(ctx, testPRURL).Return("+diff", nil)
	f.completer.EXPECT().Complete(ctx, gomock.Any()).Return("Acceptable", nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := f.reviewer.ReviewPullRequest(ctx, testPRURL, Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.Verdict.Accepted)
	assert.Nil(t, result.Published)
}

func TestReviewPullRequest_NoPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := mocks.NewMockDiffFetcher(ctrl)
	r := NewReviewer(fetcher, stubRequester("Acceptable"), nil, logger)

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)
	_, err := r.ReviewPullRequest(context.Background(), testPRURL, Options{})
	require.Error(t, err)
}

type stubRequester string

func (s stubRequester) RequestReview(context.Context, string) (string, error) {
	return string(s), nil
}
