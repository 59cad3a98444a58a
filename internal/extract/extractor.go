package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"docreview/constants"
	"docreview/internal/common"
)

// DocumentExtractor dispatches to a per-format extractor based on the
// file extension of path.
type DocumentExtractor struct {
	Log *slog.Logger
}

func NewDocumentExtractor(log *slog.Logger) *DocumentExtractor {
	if log == nil {
		log = slog.Default()
	}
	return &DocumentExtractor{Log: log}
}

func (e *DocumentExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := filepath.Ext(path)
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return TextExtractionResult{}, common.NewAppError("UNSUPPORTED_TYPE",
			fmt.Sprintf("unsupported file type: %s", ext), common.ErrUnsupportedFormat)
	}

	res := TextExtractionResult{Format: format}
	var err error
	switch format {
	case constants.TXT:
		res.Text, res.Charset, err = extractText(path)
	case constants.PDF:
		res.Text, res.Pages, err = extractPDF(path)
	case constants.DOCX:
		res.Text, err = extractDOCX(path)
	}
	res.Duration = time.Since(start)

	if err != nil {
		e.Log.Warn("extract.failed", "format", format, "error", err)
		return res, common.NewAppError("EXTRACT_ERROR",
			fmt.Sprintf("%s extraction failed: %v", format, err), common.ErrExtraction)
	}

	e.Log.Info("extract.ok",
		"format", format,
		"text_len", len(res.Text),
		"charset", res.Charset,
		"pages", res.Pages,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
