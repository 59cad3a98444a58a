package llm

import (
	"strings"
	"testing"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"spaces stripped", "Hello world", 10},
		{"empty", "", 0},
		{"newlines stripped", "a b\nc", 3},
		{"tabs are kept", "a\tb", 3},
		{"multibyte runes", "你好 世界\n", 4},
		{"only whitespace", " \n \n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseReviewResultOverridesWordCount(t *testing.T) {
	// the model reports 999; the authoritative count must win
	raw := `{
		"total_score": 77,
		"detail_json": {"grammar": 80, "logic": 75, "readability": 78, "innovation": 60, "standardization": 82},
		"issues": [],
		"word_count": 999
	}`

	got, err := ParseReviewResult(raw, 11)
	if err != nil {
		t.Fatalf("ParseReviewResult() error = %v", err)
	}
	if got.WordCount != 11 {
		t.Errorf("WordCount = %d, want the authoritative 11", got.WordCount)
	}
	if got.TotalScore != 77 {
		t.Errorf("TotalScore = %v, want 77", got.TotalScore)
	}
}

func TestParseReviewResultFencedResponse(t *testing.T) {
	raw := "```json\n" + validReviewJSON + "\n```"

	got, err := ParseReviewResult(raw, 11)
	if err != nil {
		t.Fatalf("ParseReviewResult() error = %v", err)
	}
	if got.Detail.Standardization != 92 {
		t.Errorf("Detail.Standardization = %v, want 92", got.Detail.Standardization)
	}
	if len(got.Issues) != 1 || got.Issues[0].IssueType != "grammar" {
		t.Errorf("Issues = %+v, want one grammar issue", got.Issues)
	}
}

func TestParseReviewResultMissingWordCountStillValid(t *testing.T) {
	// the override injects word_count before validation, so a model that
	// omits it entirely cannot fail the integer check
	raw := `{
		"total_score": 50,
		"detail_json": {"grammar": 50, "logic": 50, "readability": 50, "innovation": 0, "standardization": 50},
		"issues": []
	}`

	got, err := ParseReviewResult(raw, 7)
	if err != nil {
		t.Fatalf("ParseReviewResult() error = %v", err)
	}
	if got.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", got.WordCount)
	}
}

func TestParseReviewResultEmptyIssuesNotNil(t *testing.T) {
	raw := `{
		"total_score": 95,
		"detail_json": {"grammar": 95, "logic": 95, "readability": 95, "innovation": 90, "standardization": 95},
		"issues": [],
		"word_count": 1
	}`

	got, err := ParseReviewResult(raw, 1)
	if err != nil {
		t.Fatalf("ParseReviewResult() error = %v", err)
	}
	if got.Issues == nil {
		t.Error("Issues is nil, want an empty slice")
	}
}

func TestParseReviewResultNonJSON(t *testing.T) {
	_, err := ParseReviewResult("I am unable to review this document.", 5)
	if err == nil {
		t.Fatal("expected an error for non-JSON output")
	}
	if !strings.Contains(err.Error(), "unable to review") {
		t.Errorf("error should carry a raw-content snippet, got %v", err)
	}
}

func TestParseReviewResultSchemaFailure(t *testing.T) {
	raw := `{"total_score": 80, "issues": [], "word_count": 3}`
	_, err := ParseReviewResult(raw, 3)
	if err == nil {
		t.Fatal("expected a schema validation error")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error should mention schema validation, got %v", err)
	}
}
