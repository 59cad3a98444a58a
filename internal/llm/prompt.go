package llm

import (
	"strings"
	"unicode/utf8"
)

// PromptTextWindow bounds how much of the document the model ever sees.
const PromptTextWindow = 4000

const promptHeader = `MANDATORY: output a single JSON object and nothing else, or the task is void.
You are a rigorous reviewer of academic and technical documents.
Task: assess the text below across multiple quality dimensions and answer strictly in this JSON Schema, with no extra content:
{
  "total_score": number (0-100, fractions allowed),
  "detail_json": {
    "grammar": number (0-100, grammatical correctness),
    "logic": number (0-100, logical coherence),
    "readability": number (0-100),
    "innovation": number (0-100, use 0 when not applicable),
    "standardization": number (0-100, conformance to conventions)
  },
  "issues": array of objects, each with loc_start, loc_end, issue_type, message, suggestion,
  "word_count": integer (total character count of the text)
}
Rules:
1. Output only the JSON object: no prefix, suffix, explanation, or Markdown fences such as ` + "```json" + `.
2. Even for high-quality text, provide at least 3 actionable suggestions (precision of wording, tone, missing detail, and so on).
3. Suggestions must be concrete and applicable; never vague advice like "improve the wording" without saying how.
4. Every score must be between 0 and 100; word_count must be a non-negative integer.
5. detail_json key names must match the schema exactly; do not substitute synonyms such as originality for innovation.
6. If the text cannot be assessed, still return schema-valid JSON (all numbers 0, issues []); never return empty content.

Text under review (first 4000 characters):
`

// BuildReviewPrompt renders the fixed review instruction block around a
// truncated excerpt of text. Deterministic: the same input (up to the
// window) always yields a byte-identical prompt.
func BuildReviewPrompt(text string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString(truncateRunes(text, PromptTextWindow))
	return b.String()
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
