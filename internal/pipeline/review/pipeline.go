package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"docreview/internal/common"
	"docreview/internal/extract"
	"docreview/internal/llm"
)

// Config holds the retry policy for the model round trip.
type Config struct {
	MaxRetries int           // extra attempts after the first; default 2
	RetryDelay time.Duration // pause before each retry; default 1s
}

// Pipeline composes text extraction, prompt building, the model call,
// response normalization, and schema validation into one request-scoped
// review. Stateless; a single Pipeline serves concurrent requests.
type Pipeline struct {
	Extractor extract.TextExtractor
	Completer llm.Completer
	Cfg       Config
	Log       *slog.Logger
}

func NewPipeline(tx extract.TextExtractor, c llm.Completer, cfg Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 2
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &Pipeline{Extractor: tx, Completer: c, Cfg: cfg, Log: log}
}

// Run extracts text from the file at path and reviews it. Extraction
// failures surface immediately as business errors; only the model round
// trip is retried.
func (p *Pipeline) Run(ctx context.Context, path string) (llm.ReviewResult, error) {
	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		return llm.ReviewResult{}, err
	}
	return p.Review(ctx, res.Text)
}

// Review runs the model round trip over already-extracted text. The whole
// trip — transport, normalization, JSON parse, schema validation — shares
// one blanket retry budget; any failure kind consumes an attempt.
func (p *Pipeline) Review(ctx context.Context, text string) (llm.ReviewResult, error) {
	if strings.TrimSpace(text) == "" {
		return llm.ReviewResult{}, common.NewAppError("EMPTY_TEXT",
			"document contains no reviewable text", common.ErrInvalidInput)
	}

	wordCount := llm.WordCount(text)
	prompt := llm.BuildReviewPrompt(text)
	attempts := p.Cfg.MaxRetries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			p.Log.Warn("review.retrying", "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return llm.ReviewResult{}, ctx.Err()
			case <-time.After(p.Cfg.RetryDelay):
			}
		}

		raw, err := p.Completer.Complete(ctx, prompt)
		if err != nil {
			lastErr = fmt.Errorf("model call failed: %w", err)
			continue
		}
		p.Log.Info("review.model_response", "attempt", attempt, "content", raw)

		result, err := llm.ParseReviewResult(raw, wordCount)
		if err != nil {
			lastErr = err
			continue
		}

		p.Log.Info("review.ok",
			"attempt", attempt,
			"total_score", result.TotalScore,
			"issues", len(result.Issues),
			"word_count", result.WordCount,
		)
		return result, nil
	}

	return llm.ReviewResult{}, common.NewAppError("REVIEW_EXHAUSTED",
		fmt.Sprintf("no valid review after %d attempts: %v", attempts, lastErr), common.ErrModel)
}
