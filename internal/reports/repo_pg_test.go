package reports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGArchiveRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGArchiveRepo{DB: db}
	snapshot := Snapshot{
		ID:        "report-1",
		SessionID: "session-1",
		Rows: []Row{
			{DiagnosticID: "CRI-01", Title: "Asset Inventory Maintained", Response: "We keep a full inventory", Confidence: "High", Score: 3, Evidence: "None"},
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO reports").
		WithArgs(snapshot.ID, snapshot.SessionID, sqlmock.AnyArg(), snapshot.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), snapshot); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGArchiveRepoListBySession(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGArchiveRepo{DB: db}
	rows := []Row{
		{DiagnosticID: "CRI-01", Title: "Asset Inventory Maintained", Response: "Not answered", Confidence: "Low", Score: 1, Evidence: "None"},
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	created := time.Now().UTC()

	mock.ExpectQuery("SELECT id, session_id, payload, created_at").
		WithArgs("session-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "payload", "created_at"}).
			AddRow("report-1", "session-1", payload, created))

	snaps, err := repo.ListBySession(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}
	if snaps[0].ID != "report-1" || len(snaps[0].Rows) != 1 || snaps[0].Rows[0].DiagnosticID != "CRI-01" {
		t.Fatalf("unexpected snapshot: %+v", snaps[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
