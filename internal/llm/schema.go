package llm

// DetailFields are the required sub-keys of detail_json.
var DetailFields = []string{"grammar", "logic", "readability", "innovation", "standardization"}

// BuildReviewJSONSchema returns the result schema (draft 2020-12 subset) as a
// generic map. Checks are presence and primitive type only: score ranges are
// a prompt contract, and issue elements are deliberately left unchecked so a
// model that decorates them with extra fields does not burn a retry.
func BuildReviewJSONSchema() map[string]any {
	detailProps := make(map[string]any, len(DetailFields))
	for _, f := range DetailFields {
		detailProps[f] = map[string]any{"type": "number"}
	}

	return map[string]any{
		"type":     "object",
		"required": []string{"total_score", "detail_json", "issues", "word_count"},
		"properties": map[string]any{
			"total_score": map[string]any{"type": "number"},
			"detail_json": map[string]any{
				"type":       "object",
				"required":   DetailFields,
				"properties": detailProps,
			},
			"issues":     map[string]any{"type": "array"},
			"word_count": map[string]any{"type": "integer", "minimum": 0},
		},
	}
}
