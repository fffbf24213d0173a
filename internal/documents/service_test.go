package documents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"companybot-backend/internal/n8n"
	"companybot-backend/internal/shared/pagination"
	"companybot-backend/internal/shared/storage/object/local"
)

type fakeNotifier struct {
	events []n8n.DocumentEvent
	err    error
}

func (f *fakeNotifier) NotifyDocument(ctx context.Context, event n8n.DocumentEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func newDocService(t *testing.T, notifier *fakeNotifier) (*Service, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	store := local.New(t.TempDir())
	return NewService(repo, store, notifier), repo
}

func TestUploadRecordsProcessingDocument(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, repo := newDocService(t, notifier)

	result, err := svc.Upload(context.Background(), "co-1", "handbook.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if result.Document.Status != StatusProcessing {
		t.Fatalf("status = %q, want processing", result.Document.Status)
	}
	if result.Document.CompanyID != "co-1" {
		t.Fatalf("company = %q", result.Document.CompanyID)
	}
	if result.Document.FileURL == "" {
		t.Fatal("expected file URL")
	}
	if !result.Notified {
		t.Fatal("expected notified = true")
	}

	if len(notifier.events) != 1 {
		t.Fatalf("notifier calls = %d", len(notifier.events))
	}
	event := notifier.events[0]
	if event.DocumentID != result.Document.ID || event.CompanyID != "co-1" || event.FileName != "handbook.pdf" {
		t.Fatalf("event = %+v", event)
	}

	if _, err := repo.GetByID(context.Background(), result.Document.ID); err != nil {
		t.Fatalf("row should exist: %v", err)
	}
}

func TestUploadSurvivesNotifyFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("webhook down")}
	svc, repo := newDocService(t, notifier)

	result, err := svc.Upload(context.Background(), "co-1", "handbook.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("upload should succeed despite webhook failure: %v", err)
	}
	if result.Notified {
		t.Fatal("expected notified = false")
	}
	if _, err := repo.GetByID(context.Background(), result.Document.ID); err != nil {
		t.Fatalf("row should survive webhook failure: %v", err)
	}
}

func TestUploadRejectsEmptyFileName(t *testing.T) {
	svc, _ := newDocService(t, &fakeNotifier{})

	if _, err := svc.Upload(context.Background(), "co-1", "", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestDeleteRemovesObjectAndRow(t *testing.T) {
	svc, repo := newDocService(t, &fakeNotifier{})

	result, err := svc.Upload(context.Background(), "co-1", "old.pdf", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(context.Background(), "co-1", result.Document.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), result.Document.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("row should be gone, got %v", err)
	}

	key, err := svc.Store.KeyFromURL(result.Document.FileURL)
	if err != nil {
		t.Fatalf("key from url: %v", err)
	}
	if _, err := svc.Store.Open(context.Background(), key); err == nil {
		t.Fatal("storage object should be gone")
	}
}

func TestDeleteIsCompanyScoped(t *testing.T) {
	svc, repo := newDocService(t, &fakeNotifier{})

	result, err := svc.Upload(context.Background(), "co-2", "theirs.pdf", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(context.Background(), "co-1", result.Document.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-tenant delete: got %v, want ErrNotFound", err)
	}
	// Both the row and the object survive.
	if _, err := repo.GetByID(context.Background(), result.Document.ID); err != nil {
		t.Fatalf("row should survive: %v", err)
	}
	key, _ := svc.Store.KeyFromURL(result.Document.FileURL)
	rc, err := svc.Store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("object should survive: %v", err)
	}
	rc.Close()
}

func TestDeleteMissingDocument(t *testing.T) {
	svc, _ := newDocService(t, &fakeNotifier{})

	if err := svc.Delete(context.Background(), "co-1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestListPaginates(t *testing.T) {
	svc, _ := newDocService(t, &fakeNotifier{})
	for i := 0; i < 25; i++ {
		if _, err := svc.Upload(context.Background(), "co-1", "file.pdf", strings.NewReader("x")); err != nil {
			t.Fatalf("seed upload %d: %v", i, err)
		}
	}
	if _, err := svc.Upload(context.Background(), "co-2", "foreign.pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("seed foreign: %v", err)
	}

	items, env, err := svc.List(context.Background(), "co-1", pagination.Params{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("page 3 size = %d, want 5", len(items))
	}
	if env.TotalItems != 25 || env.TotalPages != 3 {
		t.Fatalf("envelope = %+v", env)
	}

	items, _, err = svc.List(context.Background(), "co-1", pagination.Params{Page: 99, PageSize: 10})
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("page past end should be empty, got %d", len(items))
	}
}

func TestSetStatusTransitions(t *testing.T) {
	svc, repo := newDocService(t, &fakeNotifier{})

	result, err := svc.Upload(context.Background(), "co-1", "file.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.SetStatus(context.Background(), result.Document.ID, StatusProcessed, "A summary."); err != nil {
		t.Fatalf("set status: %v", err)
	}
	doc, err := repo.GetByID(context.Background(), result.Document.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.Status != StatusProcessed || doc.AutoSummary != "A summary." {
		t.Fatalf("doc = %+v", doc)
	}

	// Empty summary leaves the stored one alone.
	if err := svc.SetStatus(context.Background(), result.Document.ID, StatusProcessing, ""); err != nil {
		t.Fatalf("set status: %v", err)
	}
	doc, _ = repo.GetByID(context.Background(), result.Document.ID)
	if doc.AutoSummary != "A summary." {
		t.Fatalf("summary should persist, got %q", doc.AutoSummary)
	}

	if err := svc.SetStatus(context.Background(), result.Document.ID, "exploded", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("got %v, want ErrInvalidStatus", err)
	}
	if err := svc.SetStatus(context.Background(), "missing", StatusProcessed, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
