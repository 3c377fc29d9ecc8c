package gitutil

import (
	"regexp"
	"strconv"

	"github.com/sevigo/pr-verdict/internal/core"
)

// prURLRegex is anchored at both ends: sub-pages such as /pull/1/files and
// ids with trailing text are rejected before any request is made.
var prURLRegex = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/pull/(\d+)$`)

// ParsePullRequestURL extracts the owner, repo and number from a GitHub pull
// request URL. The second return value is false when the URL does not match
// https://github.com/{owner}/{repo}/pull/{number}.
func ParsePullRequestURL(url string) (core.PullRequestRef, bool) {
	matches := prURLRegex.FindStringSubmatch(url)
	if len(matches) != 4 {
		return core.PullRequestRef{}, false
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil {
		// out of int range
		return core.PullRequestRef{}, false
	}

	return core.PullRequestRef{
		Owner:  matches[1],
		Repo:   matches[2],
		Number: number,
	}, true
}

// RequirePullRequestURL is ParsePullRequestURL for callers that cannot go on
// without a reference.
func RequirePullRequestURL(url string) (core.PullRequestRef, error) {
	ref, ok := ParsePullRequestURL(url)
	if !ok {
		return core.PullRequestRef{}, &core.MalformedURLError{URL: url}
	}
	return ref, nil
}

// DiffURL returns the location of the raw diff for a pull request URL.
func DiffURL(prURL string) string {
	return prURL + ".diff"
}
