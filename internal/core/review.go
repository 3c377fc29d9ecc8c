package core

import (
	"fmt"
)

// PullRequestRef identifies a single pull request on GitHub.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

// String renders the reference as owner/repo#number.
func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// FullName returns owner/repo.
func (r PullRequestRef) FullName() string {
	return r.Owner + "/" + r.Repo
}

// ReviewEvent is the action GitHub applies when a review is submitted.
type ReviewEvent string

const (
	EventApprove        ReviewEvent = "APPROVE"
	EventRequestChanges ReviewEvent = "REQUEST_CHANGES"
)

// Verdict is the decision extracted from the model's free-text answer.
type Verdict struct {
	Accepted    bool
	Explanation string
}

// Event maps the verdict onto the review event posted to GitHub.
func (v Verdict) Event() ReviewEvent {
	if v.Accepted {
		return EventApprove
	}
	return EventRequestChanges
}

// ReviewSubmission is the payload posted to the pull request reviews endpoint.
type ReviewSubmission struct {
	Event ReviewEvent `json:"event"`
	Body  string      `json:"body"`
}

// NewReviewSubmission builds the wire payload for a verdict. The explanation
// is used as the review body verbatim.
func NewReviewSubmission(v Verdict) ReviewSubmission {
	return ReviewSubmission{
		Event: v.Event(),
		Body:  v.Explanation,
	}
}

// PublishedReview is what GitHub reports back after a review was created.
type PublishedReview struct {
	ID      int64
	State   string
	HTMLURL string
}

// ReviewResult is returned by a completed review run.
type ReviewResult struct {
	Ref       PullRequestRef
	Diff      DiffStats
	Verdict   Verdict
	Published *PublishedReview // nil on dry runs
}

// DiffStats summarizes a unified diff.
type DiffStats struct {
	Files     int
	Hunks     int
	Additions int
	Deletions int
}
