package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts the plain text of every page of a PDF file.
func extractPDF(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", r.NumPage(), fmt.Errorf("extract plain text: %w", err)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", r.NumPage(), fmt.Errorf("read plain text: %w", err)
	}

	text := strings.TrimSpace(string(content))
	if text == "" {
		return "", r.NumPage(), errors.New("no extractable text in pdf")
	}
	return text, r.NumPage(), nil
}
