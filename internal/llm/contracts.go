package llm

import "context"

// ScoreDetail holds the five per-dimension scores, each 0-100.
type ScoreDetail struct {
	Grammar         float64 `json:"grammar"`
	Logic           float64 `json:"logic"`
	Readability     float64 `json:"readability"`
	Innovation      float64 `json:"innovation"`
	Standardization float64 `json:"standardization"`
}

// Issue is one annotated problem with an actionable suggestion.
type Issue struct {
	LocStart   int    `json:"loc_start"`
	LocEnd     int    `json:"loc_end"`
	IssueType  string `json:"issue_type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// ReviewResult is the normalized shape we want from the model. Instances are
// only constructed through ParseReviewResult, which fails closed: anything
// that did not pass schema validation never becomes a ReviewResult.
type ReviewResult struct {
	TotalScore float64     `json:"total_score"`
	Detail     ScoreDetail `json:"detail_json"`
	Issues     []Issue     `json:"issues"`
	WordCount  int         `json:"word_count"`
}

// Completer is the single-attempt transport to the review model. Retry
// policy belongs to the caller, not the transport.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
