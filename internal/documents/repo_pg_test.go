package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateNullsEmptyMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("doc-1", "file.pdf", "https://bucket.s3.eu-west-1.amazonaws.com/co-1/file.pdf", StatusProcessing, "co-1", nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), Document{
		ID:        "doc-1",
		FileName:  "file.pdf",
		FileURL:   "https://bucket.s3.eu-west-1.amazonaws.com/co-1/file.pdf",
		Status:    StatusProcessing,
		CompanyID: "co-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByCompanyScansNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "file_name", "file_url", "status", "company_id", "context", "important_points", "instructions", "auto_summary", "created_at", "updated_at"}).
		AddRow("doc-1", "a.pdf", nil, StatusProcessed, "co-1", nil, nil, nil, "summary", now, now)

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("co-1", 10, 0).
		WillReturnRows(rows)

	docs, err := repo.ListByCompany(context.Background(), "co-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByCompany: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("len = %d", len(docs))
	}
	if docs[0].FileURL != "" || docs[0].AutoSummary != "summary" {
		t.Fatalf("doc = %+v", docs[0])
	}
}

func TestPGRepoSetStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE documents").
		WithArgs("missing", StatusProcessed, "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetStatus(context.Background(), "missing", StatusProcessed, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
