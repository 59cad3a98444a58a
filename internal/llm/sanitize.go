package llm

import "strings"

// NormalizeResponse strips the formatting artifacts models wrap around JSON
// output: surrounding whitespace, ```json / ``` fence markers, and any prose
// outside the outermost object braces. It never repairs the JSON itself;
// a payload that still fails to parse is the retry loop's problem.
// Idempotent: normalizing already-clean output is a no-op.
func NormalizeResponse(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = strings.TrimSpace(clean[start : end+1])
	}
	return clean
}
