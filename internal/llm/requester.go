package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/pr-verdict/internal/core"
)

// RequestOptions are the model settings used for every review request.
type RequestOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// ReviewRequester asks the model for a verdict on a diff.
type ReviewRequester struct {
	completer  core.ChatCompleter
	prompts    *PromptManager
	guidelines *core.ReviewGuidelines
	opts       RequestOptions
	logger     *slog.Logger
}

// NewReviewRequester creates a ReviewRequester. A nil guidelines value falls
// back to core.DefaultReviewGuidelines.
func NewReviewRequester(completer core.ChatCompleter, prompts *PromptManager, guidelines *core.ReviewGuidelines, opts RequestOptions, logger *slog.Logger) *ReviewRequester {
	if guidelines == nil {
		guidelines = core.DefaultReviewGuidelines()
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return &ReviewRequester{
		completer:  completer,
		prompts:    prompts,
		guidelines: guidelines,
		opts:       opts,
		logger:     logger,
	}
}

// BuildMessages returns the system instruction followed by the diff.
func (r *ReviewRequester) BuildMessages(diff string) ([]core.ChatMessage, error) {
	systemPrompt, err := r.prompts.Render(ReviewPrompt, ReviewPromptData{
		Guidelines: r.guidelines.Guidelines,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering system prompt: %w", err)
	}

	return []core.ChatMessage{
		{Role: core.RoleSystem, Content: systemPrompt},
		{Role: core.RoleUser, Content: diff},
	}, nil
}

// RequestReview returns the model's free-text verdict for diff.
func (r *ReviewRequester) RequestReview(ctx context.Context, diff string) (string, error) {
	messages, err := r.BuildMessages(diff)
	if err != nil {
		return "", err
	}

	r.logger.Info("requesting review from model", "model", r.opts.Model, "diff_bytes", len(diff))
	return r.completer.Complete(ctx, core.ChatRequest{
		Model:       r.opts.Model,
		Messages:    messages,
		Temperature: r.opts.Temperature,
		MaxTokens:   r.opts.MaxTokens,
	})
}
