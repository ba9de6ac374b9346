// Package llm is the single boundary to the external text-generation
// service. Every operation makes exactly one API call bounded by a fixed
// timeout; retry policy, if any, belongs to the caller. Transport failures
// surface as domain.ErrGenerationFailed, unusable output as
// domain.ErrInvalidGeneration.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/palabra-app/palabra-backend/internal/config"
	"github.com/palabra-app/palabra-backend/internal/domain"
)

// Client calls the text-generation API for vocabulary tasks.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewClient creates a Client from LLM configuration.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "llm"),
	}
}

// ProcessWords translates and classifies a batch of Spanish words in one
// call. Individual malformed records are dropped; at least one usable
// record is required.
func (c *Client) ProcessWords(ctx context.Context, words []string) ([]WordRecord, error) {
	raw, err := c.complete(ctx, buildBulkPrompt(words))
	if err != nil {
		return nil, err
	}

	records, err := ParseWordRecords(raw)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "bulk words processed",
		slog.Int("requested", len(words)),
		slog.Int("returned", len(records)),
	)
	return records, nil
}

// GenerateExamples produces count example sentence pairs for one word.
func (c *Client) GenerateExamples(ctx context.Context, word *domain.Word, count int) ([]ExampleRecord, error) {
	raw, err := c.complete(ctx, buildExamplesPrompt(word, count))
	if err != nil {
		return nil, err
	}
	return ParseExamples(raw)
}

// EvaluateSentence grades one submitted practice sentence against its
// target word and returns structured feedback.
func (c *Client) EvaluateSentence(ctx context.Context, word *domain.Word, sentence string) (*domain.Feedback, error) {
	raw, err := c.complete(ctx, buildFeedbackPrompt(word, sentence))
	if err != nil {
		return nil, err
	}
	return ParseFeedback(raw)
}

// complete sends one prompt and returns the raw response text.
// The call is bounded by the configured timeout; there are no retries.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		c.log.WarnContext(ctx, "generation call failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	if len(msg.Content) == 0 || msg.Content[0].Text == "" {
		return "", fmt.Errorf("%w: empty response", domain.ErrInvalidGeneration)
	}

	c.log.DebugContext(ctx, "generation call done",
		slog.Duration("elapsed", time.Since(start)),
	)
	return msg.Content[0].Text, nil
}
