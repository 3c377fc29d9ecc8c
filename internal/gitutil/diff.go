package gitutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sevigo/pr-verdict/internal/core"
)

// DiffFetcher downloads pull request diffs from the public .diff endpoint.
type DiffFetcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewDiffFetcher creates a DiffFetcher that issues requests with client.
func NewDiffFetcher(client *http.Client, logger *slog.Logger) *DiffFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &DiffFetcher{client: client, logger: logger}
}

// Fetch returns the diff text of the pull request at prURL. Only a 200
// response is accepted; anything else is reported as a *core.FetchError.
func (f *DiffFetcher) Fetch(ctx context.Context, prURL string) (string, error) {
	diffURL := DiffURL(prURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, diffURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	f.logger.Debug("fetching pull request diff", "url", diffURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching diff %s: %w", diffURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading diff response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		f.logger.Error("diff request failed", "url", diffURL, "status", resp.StatusCode)
		return "", &core.FetchError{URL: diffURL, StatusCode: resp.StatusCode, Body: string(body)}
	}

	f.logger.Debug("fetched pull request diff", "url", diffURL, "bytes", len(body))
	return string(body), nil
}
