package documents

import "time"

// Document statuses. "processing" is set on upload; the workflow engine
// reports the transition to "processed" through the status callback.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusProcessed  = "processed"
)

// Document is an uploaded file owned by a tenant. FileURL points into
// object storage; the free-text metadata fields feed the RAG workflow.
type Document struct {
	ID              string
	FileName        string
	FileURL         string
	Status          string
	CompanyID       string
	Context         string
	ImportantPoints string
	Instructions    string
	AutoSummary     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidStatus reports whether s is one of the known document statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusProcessed:
		return true
	}
	return false
}
