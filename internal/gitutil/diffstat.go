package gitutil

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/sevigo/pr-verdict/internal/core"
)

var hunkHeaderRegex = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+\d+(?:,\d+)? @@`)

// SummarizeDiff counts files, hunks and changed lines in a unified diff.
// Lines outside a hunk (file headers, index lines, "\ No newline" markers)
// are not counted as changes.
func SummarizeDiff(diff string, logger *slog.Logger) core.DiffStats {
	var stats core.DiffStats
	inHunk := false

	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			stats.Files++
			inHunk = false
		case strings.HasPrefix(line, "@@"):
			if !hunkHeaderRegex.MatchString(line) {
				if logger != nil {
					logger.Warn("skipped malformed hunk header", "line", line)
				}
				inHunk = false
				continue
			}
			stats.Hunks++
			inHunk = true
		case !inHunk:
			continue
		case strings.HasPrefix(line, "+"):
			stats.Additions++
		case strings.HasPrefix(line, "-"):
			stats.Deletions++
		}
	}

	return stats
}
