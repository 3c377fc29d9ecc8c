package review

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/sevigo/pr-verdict/internal/core"
	"github.com/sevigo/pr-verdict/internal/github"
	"github.com/sevigo/pr-verdict/internal/gitutil"
	"github.com/sevigo/pr-verdict/internal/llm"
)

// rewriteTransport sends every request to a local test server while keeping
// a record of the URL the caller asked for.
type rewriteTransport struct {
	target *url.URL

	mu   sync.Mutex
	seen []string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.seen = append(t.seen, req.Method+" "+req.URL.String())
	t.mu.Unlock()

	clone := req.Clone(req.Context())
	clone.URL.Scheme = t.target.Scheme
	clone.URL.Host = t.target.Host
	clone.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(clone)
}

func (t *rewriteTransport) requests() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.seen...)
}

type endToEnd struct {
	transport *rewriteTransport
	reviewer  *Reviewer
	chatCalls atomic.Int32

	mu         sync.Mutex
	postedBody map[string]any
}

func (e *endToEnd) posted() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.postedBody
}

func newEndToEnd(t *testing.T, diffStatus int, chatAnswer string) *endToEnd {
	t.Helper()
	e := &endToEnd{}

	mux := http.NewServeMux()
	mux.HandleFunc("/foo/bar/pull/116.diff", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(diffStatus)
		w.Write([]byte("diff --git a/x b/x\n+x\n"))
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		e.chatCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": chatAnswer}}},
		})
	})
	mux.HandleFunc("/repos/foo/bar/pulls/116/reviews", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		e.mu.Lock()
		e.postedBody = body
		e.mu.Unlock()
		w.Write([]byte(`{"id":1,"state":"APPROVED"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)
	e.transport = &rewriteTransport{target: target}
	httpClient := &http.Client{Transport: e.transport, Timeout: 5 * time.Second}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pm, err := llm.NewPromptManager()
	require.NoError(t, err)
	chat := llm.NewChatClient("sk-test", logger, llm.WithHTTPClient(httpClient))
	requester := llm.NewReviewRequester(chat, pm, nil, llm.RequestOptions{}, logger)

	ghCtx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	ghClient, err := github.NewPATClient(ghCtx, "gh-token", "", 5*time.Second, logger)
	require.NoError(t, err)

	e.reviewer = NewReviewer(
		gitutil.NewDiffFetcher(httpClient, logger),
		requester,
		github.NewReviewPublisher(ghClient, logger),
		logger,
	)
	return e
}

func TestEndToEnd_Approve(t *testing.T) {
	e := newEndToEnd(t, http.StatusOK, "acceptable - looks good")

	result, err := e.reviewer.ReviewPullRequest(context.Background(), testPRURL, Options{})
	require.NoError(t, err)

	assert.Equal(t, core.PullRequestRef{Owner: "foo", Repo: "bar", Number: 116}, result.Ref)
	assert.Equal(t, map[string]any{"event": "APPROVE", "body": " - looks good"}, e.posted())
	assert.Equal(t, []string{
		"GET https://github.com/foo/bar/pull/116.diff",
		"POST https://api.openai.com/v1/chat/completions",
		"POST https://api.github.com/repos/foo/bar/pulls/116/reviews",
	}, e.transport.requests())
}

func TestEndToEnd_DiffNotFound(t *testing.T) {
	e := newEndToEnd(t, http.StatusNotFound, "acceptable")

	_, err := e.reviewer.ReviewPullRequest(context.Background(), testPRURL, Options{})

	var fetchErr *core.FetchError
	require.True(t, errors.As(err, &fetchErr), "got %v", err)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Zero(t, e.chatCalls.Load())
	assert.Nil(t, e.posted())
	assert.Len(t, e.transport.requests(), 1)
}
