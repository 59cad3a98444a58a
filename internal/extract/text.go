package extract

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// extractText reads a plain-text file, sniffing the charset from the raw
// bytes and decoding to UTF-8. Undecodable content falls back to the raw
// bytes rather than failing the request.
func extractText(path string) (string, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	if len(raw) == 0 {
		return "", "", nil
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		// DetermineEncoding falls back to windows-1252, which would
		// mangle BOM-less UTF-8; trust valid UTF-8 as-is.
		return string(raw), "utf-8", nil
	}

	enc, name, _ := charset.DetermineEncoding(raw, "text/plain")
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), enc.NewDecoder()))
	if err != nil {
		return string(raw), name, nil
	}
	return string(decoded), name, nil
}
