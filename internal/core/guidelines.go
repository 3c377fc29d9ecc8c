package core

// ReviewGuidelines represents the structure of a guidelines file.
type ReviewGuidelines struct {
	// Project rules the model checks the diff against, one per entry.
	Guidelines []string `yaml:"guidelines"`
}

// DefaultReviewGuidelines returns the contribution rules used when no
// guidelines file is configured.
func DefaultReviewGuidelines() *ReviewGuidelines {
	return &ReviewGuidelines{
		Guidelines: []string{
			"Your pull request should be atomic and focus on a single change.",
			"Your pull request should include tests for your change. We automatically enforce this with [CodeCov](https://docs.codecov.com/docs/commit-status)",
			"You should have thoroughly tested your changes with multiple different prompts.",
			"You should have considered potential risks and mitigations for your changes.",
			"You should have documented your changes clearly and comprehensively.",
			`You should not include any unrelated or "extra" small tweaks or changes.`,
		},
	}
}
