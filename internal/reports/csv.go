package reports

import (
	"strconv"
	"strings"
)

// csvHeader is the canonical column order shared by both export formats.
const csvHeader = "Diagnostic ID,Title,Response,Confidence,Score,Evidence"

// ToCSV renders rows as comma-separated text. Fields are joined naively
// without quoting, matching the established export format; there is no
// trailing newline.
func ToCSV(rows []Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvHeader)
	for _, row := range rows {
		lines = append(lines, strings.Join([]string{
			row.DiagnosticID,
			row.Title,
			row.Response,
			row.Confidence,
			strconv.Itoa(row.Score),
			row.Evidence,
		}, ","))
	}
	return strings.Join(lines, "\n")
}
