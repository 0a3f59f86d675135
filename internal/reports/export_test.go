package reports

import (
	"bytes"
	"strings"
	"testing"
)

func TestToCSVHeaderAndRows(t *testing.T) {
	rows := []Row{
		{DiagnosticID: "CRI-01", Title: "Asset Inventory Maintained", Response: "We keep a full inventory", Confidence: "High", Score: 3, Evidence: "CRI-01/audit.pdf"},
		{DiagnosticID: "CRI-02", Title: "Access Controls Enforced", Response: "Not answered", Confidence: "Low", Score: 1, Evidence: "None"},
	}

	got := ToCSV(rows)
	want := "Diagnostic ID,Title,Response,Confidence,Score,Evidence\n" +
		"CRI-01,Asset Inventory Maintained,We keep a full inventory,High,3,CRI-01/audit.pdf\n" +
		"CRI-02,Access Controls Enforced,Not answered,Low,1,None"
	if got != want {
		t.Fatalf("unexpected CSV output:\n%s\nwant:\n%s", got, want)
	}
}

func TestToCSVEmptyReport(t *testing.T) {
	got := ToCSV(nil)
	if got != "Diagnostic ID,Title,Response,Confidence,Score,Evidence" {
		t.Fatalf("expected header only, got %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatal("expected no trailing newline")
	}
}

func TestToPDFProducesDocument(t *testing.T) {
	rows := []Row{
		{DiagnosticID: "CRI-01", Title: "Asset Inventory Maintained", Response: "We keep a full inventory", Confidence: "High", Score: 3, Evidence: "None"},
	}

	data, err := ToPDF("CREAM Assessment Report", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF magic bytes, got %q", data[:min(len(data), 8)])
	}
}

func TestToPDFHandlesLongText(t *testing.T) {
	rows := []Row{
		{
			DiagnosticID: "CRI-01",
			Title:        strings.Repeat("Very Long Title ", 10),
			Response:     strings.Repeat("a detailed rationale about the control ", 20),
			Confidence:   "Medium",
			Score:        2,
			Evidence:     "None",
		},
	}

	data, err := ToPDF("CREAM Assessment Report", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}
