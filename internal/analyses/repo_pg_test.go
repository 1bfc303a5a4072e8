package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	analysis := Analysis{
		ID:           "an-1",
		DocumentID:   "doc-1",
		SourceFormat: "txt",
		OverallScore: 72.5,
		Grade:        "B+",
		CareerLevel:  "senior",
		Report:       &Report{},
		CreatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs("an-1", sqlmock.AnyArg(), "txt", 72.5, "B+", "senior", sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "document_id", "source_format", "overall_score", "grade", "career_level", "report", "created_at",
	}).AddRow("an-1", nil, "txt", 72.5, "B+", "senior",
		[]byte(`{"basic_info":{"name":"John Smith","email":"","location":"","linkedin":"","github":"","summary_preview":""}}`), now)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("an-1").
		WillReturnRows(rows)

	analysis, err := repo.GetByID(context.Background(), "an-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if analysis.Report == nil || analysis.Report.BasicInfo.Name != "John Smith" {
		t.Fatalf("report payload not decoded: %+v", analysis.Report)
	}
	if analysis.DocumentID != "" {
		t.Fatalf("expected empty document id, got %q", analysis.DocumentID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "document_id", "source_format", "overall_score", "grade", "career_level", "report", "created_at",
		}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
