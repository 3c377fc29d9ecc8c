package llm

import (
	"strings"

	"github.com/sevigo/pr-verdict/internal/core"
)

// ParseVerdict interprets the model's answer. After trimming surrounding
// whitespace the answer must start with "acceptable" or "request changes"
// (case-insensitive); whatever follows the prefix becomes the explanation
// unchanged.
func ParseVerdict(text string) (core.Verdict, error) {
	review := strings.TrimSpace(text)

	if rest, ok := cutPrefixFold(review, acceptablePrefix); ok {
		return core.Verdict{Accepted: true, Explanation: rest}, nil
	}
	if rest, ok := cutPrefixFold(review, requestChangesPrefix); ok {
		return core.Verdict{Accepted: false, Explanation: rest}, nil
	}

	return core.Verdict{}, &core.InvalidVerdictError{Text: review}
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
