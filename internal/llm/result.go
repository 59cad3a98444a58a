package llm

import (
	"encoding/json"
	"fmt"
)

const parseSnippetLen = 200

// WordCount is the authoritative character count of a document: the runes
// remaining after space and newline characters are removed. It always
// overrides whatever word_count the model reports.
func WordCount(text string) int {
	n := 0
	for _, r := range text {
		if r != ' ' && r != '\n' {
			n++
		}
	}
	return n
}

// ParseReviewResult turns raw model output into a ReviewResult, failing
// closed. Steps: normalize formatting artifacts, parse, force word_count to
// the authoritative value, schema-validate, then decode into the typed
// struct. Every returned error is retryable from the caller's point of view.
func ParseReviewResult(raw string, wordCount int) (ReviewResult, error) {
	clean := NormalizeResponse(raw)

	var doc map[string]any
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return ReviewResult{}, fmt.Errorf("model output is not valid JSON: %w (content: %q)", err, snippet(clean))
	}

	// The model's count is untrusted; replace it before validation so the
	// integer check can only ever see our value.
	doc["word_count"] = wordCount

	merged, err := json.Marshal(doc)
	if err != nil {
		return ReviewResult{}, fmt.Errorf("re-encode model output: %w", err)
	}
	if err := ValidateReview(merged); err != nil {
		return ReviewResult{}, fmt.Errorf("model output failed schema validation: %w", err)
	}

	var out ReviewResult
	if err := json.Unmarshal(merged, &out); err != nil {
		return ReviewResult{}, fmt.Errorf("decode review result: %w (content: %q)", err, snippet(clean))
	}
	out.WordCount = wordCount
	if out.Issues == nil {
		// keep "issues": [] in responses rather than null
		out.Issues = []Issue{}
	}
	return out, nil
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= parseSnippetLen {
		return s
	}
	return string(r[:parseSnippetLen]) + "..."
}
