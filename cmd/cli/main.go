// Command verdict-cli reviews a GitHub pull request with a chat model and
// posts the verdict as a review.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		slog.Error("verdict-cli failed", "error", err)
		os.Exit(1)
	}
}
