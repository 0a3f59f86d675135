package reports

import (
	"assessment-backend/internal/catalog"
	"assessment-backend/internal/responses"
	"assessment-backend/internal/scoring"
)

const (
	// UnansweredResponse fills the response column for diagnostics the
	// session never answered. It runs through the scorer like any other
	// text, so unanswered rows land at score 1 / Low rather than 0.
	UnansweredResponse = "Not answered"

	// NoEvidence fills the evidence column when no file was attached.
	NoEvidence = "None"
)

// BuildRows assembles one row per catalog item, in catalog order. Score and
// confidence are recomputed from the response text on every build; the cached
// values on the stored record are ignored so two builds over the same inputs
// are byte-identical.
func BuildRows(items []catalog.DiagnosticItem, records []responses.Record, scorer scoring.Scorer) []Row {
	byDiag := make(map[string]responses.Record, len(records))
	for _, rec := range records {
		byDiag[rec.DiagnosticID] = rec
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		responseText := UnansweredResponse
		evidence := NoEvidence
		if rec, ok := byDiag[item.ID]; ok {
			if rec.ResponseText != "" {
				responseText = rec.ResponseText
			}
			if rec.EvidenceRef != "" {
				evidence = rec.EvidenceRef
			}
		}
		result := scorer.Score(responseText)
		rows = append(rows, Row{
			DiagnosticID: item.ID,
			Title:        item.Title,
			Response:     responseText,
			Confidence:   string(result.Confidence),
			Score:        result.Score,
			Evidence:     evidence,
		})
	}
	return rows
}
