package scoring

import (
	"strings"
	"unicode/utf8"
)

// Confidence is the qualitative label attached to a score.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Result is a derived score for a response text. It is recomputed on demand
// and never treated as ground truth, even where it is cached alongside the
// response for display.
type Result struct {
	Score      int        `json:"score"`
	Confidence Confidence `json:"confidence"`
}

// Scorer evaluates a response text. Implementations must be pure and total so
// report generation stays deterministic.
type Scorer interface {
	Score(responseText string) Result
}

// KeywordScorer is the built-in heuristic standing in for a real scoring
// service. Keyword match takes precedence over length, and the substring
// checks are case-sensitive on purpose.
type KeywordScorer struct{}

// Score evaluates a response text.
func (KeywordScorer) Score(responseText string) Result {
	if responseText == "" {
		return Result{Score: 0, Confidence: ConfidenceLow}
	}
	if strings.Contains(responseText, "least privilege") || strings.Contains(responseText, "inventory") {
		return Result{Score: 3, Confidence: ConfidenceHigh}
	}
	if utf8.RuneCountInString(responseText) > 40 {
		return Result{Score: 2, Confidence: ConfidenceMedium}
	}
	return Result{Score: 1, Confidence: ConfidenceLow}
}

var _ Scorer = KeywordScorer{}
