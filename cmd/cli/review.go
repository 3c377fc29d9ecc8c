package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/pr-verdict/internal/core"
	"github.com/sevigo/pr-verdict/internal/review"
	"github.com/sevigo/pr-verdict/internal/wire"
)

var (
	dryRun  bool
	verbose bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [pr-url]",
	Short: "Review a GitHub pull request and post an approve/request-changes verdict",
	Long: `Review a GitHub pull request.

The review command downloads the PR diff, asks the configured model whether
the change is acceptable and posts an APPROVE or REQUEST_CHANGES review.

Examples:
  verdict-cli review https://github.com/owner/repo/pull/123
  verdict-cli review --dry-run --model gpt-4o https://github.com/owner/repo/pull/123`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the verdict without posting a review")
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the diff summary and total run time")
	reviewCmd.Flags().String("model", "", "Chat model to use")
	reviewCmd.Flags().Int("max-tokens", 0, "Maximum tokens in the model answer (0 leaves it to the server)")
	reviewCmd.Flags().String("guidelines", "", "YAML file with review guidelines")

	for key, flag := range map[string]string{
		"LLM_MODEL":       "model",
		"LLM_MAX_TOKENS":  "max-tokens",
		"GUIDELINES_FILE": "guidelines",
	} {
		if err := viper.BindPFlag(key, reviewCmd.Flags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	prURL := args[0]
	start := time.Now()

	titleColor.Println("Pull Request Review")
	dimColor.Printf("   Target: %s\n\n", prURL)

	a, err := wire.InitializeApp(ctx, viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: set OPENAI_API_KEY in the environment or the .env file", err)
	}
	if !dryRun {
		if err := a.Cfg.ValidateForPublishing(); err != nil {
			return fmt.Errorf("%w\n\nTip: set GITHUB_REVIEWER_TOKEN or pass --dry-run", err)
		}
	}

	result, err := a.Reviewer.ReviewPullRequest(ctx, prURL, review.Options{DryRun: dryRun})
	if err != nil {
		return err
	}

	printResult(result)
	if verbose {
		dimColor.Printf("\nDiff: %d files, %d hunks, +%d -%d\n",
			result.Diff.Files, result.Diff.Hunks, result.Diff.Additions, result.Diff.Deletions)
		dimColor.Printf("Total time: %s\n", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func printResult(result *core.ReviewResult) {
	if result.Verdict.Accepted {
		successColor.Printf("Verdict: %s\n", result.Verdict.Event())
	} else {
		warnColor.Printf("Verdict: %s\n", result.Verdict.Event())
	}

	if explanation := renderMarkdown(result.Verdict.Explanation); explanation != "" {
		fmt.Println(explanation)
	}

	switch {
	case result.Published == nil:
		dimColor.Println("Dry run: review was not posted.")
	case result.Published.HTMLURL != "":
		fmt.Printf("Successfully reviewed PR: %s\n", result.Published.HTMLURL)
	default:
		fmt.Println("Successfully reviewed PR.")
	}
}

func renderMarkdown(md string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
