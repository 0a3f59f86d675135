package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assessment-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := Build(config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		PageSize:        10,
		ReportTitle:     "CREAM Assessment Report",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *App, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestBuildFallsBackToMemoryWithoutDatabase(t *testing.T) {
	app := newTestApp(t)

	if app.DB != nil {
		t.Fatal("expected nil DB in dev without DATABASE_URL")
	}
	if len(app.CatalogService.Items()) == 0 {
		t.Fatal("expected catalog loaded at startup")
	}
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	_, err := Build(config.Config{Env: "production"})
	if err == nil {
		t.Fatal("expected error for missing DATABASE_URL in production")
	}
}

func TestAssessmentFlow(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/api/v1/sessions", map[string]string{"email": "assessor@example.com"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("expected session ID in response")
	}

	rec = doJSON(t, app, http.MethodPut, "/api/v1/sessions/"+created.SessionID+"/responses/CRI-01",
		map[string]string{"response": "We keep a full inventory"})
	if rec.Code != http.StatusOK {
		t.Fatalf("save response: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var saved struct {
		Score      int    `json:"score"`
		Confidence string `json:"confidence"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if saved.Score != 3 || saved.Confidence != "High" {
		t.Fatalf("unexpected scoring: %+v", saved)
	}

	rec = doJSON(t, app, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/report", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("report: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var report struct {
		Rows []struct {
			DiagnosticID string `json:"diagnosticId"`
			Response     string `json:"response"`
			Score        int    `json:"score"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected one row per catalog item, got %d", len(report.Rows))
	}
	if report.Rows[0].Score != 3 || report.Rows[1].Response != "Not answered" {
		t.Fatalf("unexpected report rows: %+v", report.Rows)
	}

	rec = doJSON(t, app, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/report.csv", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("csv: expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "assessment_report.csv") {
		t.Fatalf("unexpected disposition %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "Diagnostic ID,Title,Response,Confidence,Score,Evidence") {
		t.Fatalf("unexpected CSV body:\n%s", rec.Body.String())
	}

	rec = doJSON(t, app, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/report.pdf", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf: expected 200, got %d", rec.Code)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF magic bytes")
	}
}

func TestDiagnosticsEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/api/v1/diagnostics?tiers=1&page=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Page       int `json:"page"`
		TotalPages int `json:"totalPages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(page.Items) != 2 || page.Page != 1 || page.TotalPages != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestUnknownSessionReturns404(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/api/v1/sessions/no-such-session/report", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
