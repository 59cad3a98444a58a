package constants

import "strings"

// Document formats accepted for review.
const (
	TXT  = "TXT"
	PDF  = "PDF"
	DOCX = "DOCX"
)

// AllowedExtensions holds the accepted upload extensions (lowercase, no dot).
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"pdf":  {},
	"docx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the document format for a file extension,
// or "" when the extension is not accepted.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "txt":
		return TXT
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	}
	return ""
}
