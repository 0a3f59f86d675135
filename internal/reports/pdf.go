package reports

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []struct {
	header string
	width  float64
}{
	{"ID", 18},
	{"Title", 42},
	{"Response", 55},
	{"Confidence", 22},
	{"Score", 12},
	{"Evidence", 41},
}

// ToPDF renders rows as a paginated PDF table with the given document title.
// Long cell text is truncated to the column width; the table repeats its
// header row on every page.
func ToPDF(title string, rows []Row) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)

	writeHeader := func() {
		doc.SetFont("Helvetica", "B", 9)
		doc.SetFillColor(230, 230, 230)
		for _, col := range pdfColumns {
			doc.CellFormat(col.width, 7, col.header, "1", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Helvetica", "", 8)
	}

	doc.SetHeaderFunc(func() {
		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
		doc.Ln(2)
		writeHeader()
	})

	doc.AddPage()
	for _, row := range rows {
		cells := []string{
			row.DiagnosticID,
			row.Title,
			row.Response,
			row.Confidence,
			strconv.Itoa(row.Score),
			row.Evidence,
		}
		for i, cell := range cells {
			doc.CellFormat(pdfColumns[i].width, 6, fitCell(doc, cell, pdfColumns[i].width), "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fitCell(doc *gofpdf.Fpdf, text string, width float64) string {
	const pad = 2.0
	if doc.GetStringWidth(text) <= width-pad {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if doc.GetStringWidth(string(runes)+"...") <= width-pad {
			return string(runes) + "..."
		}
	}
	return ""
}
