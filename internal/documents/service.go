package documents

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"companybot-backend/internal/n8n"
	"companybot-backend/internal/shared/pagination"
	"companybot-backend/internal/shared/storage/object"
	"companybot-backend/internal/shared/telemetry"
)

// Notifier triggers the external ingestion workflow for a new document.
type Notifier interface {
	NotifyDocument(ctx context.Context, event n8n.DocumentEvent) error
}

// Service contains business logic for tenant documents.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Notifier Notifier
}

// NewService constructs a Service.
func NewService(repo Repo, store object.ObjectStore, notifier Notifier) *Service {
	return &Service{Repo: repo, Store: store, Notifier: notifier}
}

// UploadResult is the outcome of an upload. Notified is false when the
// ingestion webhook could not be reached; the document row exists either
// way.
type UploadResult struct {
	Document Document
	Notified bool
}

// Upload saves the file under a company-namespaced key, records the
// document with status "processing", and triggers the ingestion workflow.
// The workflow call is best-effort: its failure never rolls back the upload.
func (s *Service) Upload(ctx context.Context, companyID, fileName string, r io.Reader) (UploadResult, error) {
	if fileName == "" {
		return UploadResult{}, ErrInvalidInput
	}

	storageKey, _, _, err := s.Store.Save(ctx, companyID, fileName, r)
	if err != nil {
		return UploadResult{}, fmt.Errorf("store document: %w", err)
	}

	doc := Document{
		ID:        uuid.NewString(),
		FileName:  fileName,
		FileURL:   s.Store.URL(storageKey),
		Status:    StatusProcessing,
		CompanyID: companyID,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return UploadResult{}, fmt.Errorf("record document: %w", err)
	}

	result := UploadResult{Document: doc, Notified: true}
	err = s.Notifier.NotifyDocument(ctx, n8n.DocumentEvent{
		DocumentID: doc.ID,
		CompanyID:  companyID,
		FileURL:    doc.FileURL,
		FileName:   doc.FileName,
	})
	if err != nil {
		result.Notified = false
		telemetry.Warn("document webhook failed, file is saved", map[string]any{
			"document_id": doc.ID,
			"company_id":  companyID,
			"error":       err.Error(),
		})
	}
	return result, nil
}

// List returns one page of the company's documents, newest first.
func (s *Service) List(ctx context.Context, companyID string, p pagination.Params) ([]Document, pagination.Envelope, error) {
	total, err := s.Repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, pagination.Envelope{}, fmt.Errorf("count documents: %w", err)
	}
	items, err := s.Repo.ListByCompany(ctx, companyID, p.PageSize, p.Offset())
	if err != nil {
		return nil, pagination.Envelope{}, fmt.Errorf("list documents: %w", err)
	}
	if items == nil {
		items = []Document{}
	}
	return items, pagination.NewEnvelope(total, p), nil
}

// Delete removes a document from the caller's company: first the storage
// object (key recovered from the stored URL), then the row. The two steps
// are not transactional; a storage failure is logged and the row is removed
// anyway so the document does not linger half-dead in listings.
func (s *Service) Delete(ctx context.Context, companyID, documentID string) error {
	doc, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.CompanyID != companyID {
		return ErrNotFound
	}

	if doc.FileURL != "" {
		key, err := s.Store.KeyFromURL(doc.FileURL)
		if err == nil {
			err = s.Store.Delete(ctx, key)
		}
		if err != nil {
			telemetry.Warn("storage delete failed, removing row anyway", map[string]any{
				"document_id": doc.ID,
				"file_url":    doc.FileURL,
				"error":       err.Error(),
			})
		}
	}

	return s.Repo.Delete(ctx, documentID)
}

// SetStatus applies a status transition reported by the workflow engine,
// optionally attaching the generated summary.
func (s *Service) SetStatus(ctx context.Context, documentID, status, autoSummary string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.Repo.SetStatus(ctx, documentID, status, autoSummary)
}
