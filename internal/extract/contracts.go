package extract

import (
	"context"
	"time"
)

// TextExtractor turns an uploaded file into plain text for review.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Format   string // "TXT" | "PDF" | "DOCX"
	Charset  string // detected charset, plain text only
	Pages    int    // PDF only
	Duration time.Duration
}
