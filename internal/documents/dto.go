package documents

import "time"

// DocumentResponse is the wire shape for a document.
type DocumentResponse struct {
	ID              string    `json:"id"`
	FileName        string    `json:"file_name"`
	FileURL         string    `json:"file_url,omitempty"`
	Status          string    `json:"status"`
	CompanyID       string    `json:"company_id"`
	Context         string    `json:"context,omitempty"`
	ImportantPoints string    `json:"important_points,omitempty"`
	Instructions    string    `json:"instructions,omitempty"`
	AutoSummary     string    `json:"auto_summary,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToResponse maps a Document to its wire shape.
func ToResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:              doc.ID,
		FileName:        doc.FileName,
		FileURL:         doc.FileURL,
		Status:          doc.Status,
		CompanyID:       doc.CompanyID,
		Context:         doc.Context,
		ImportantPoints: doc.ImportantPoints,
		Instructions:    doc.Instructions,
		AutoSummary:     doc.AutoSummary,
		CreatedAt:       doc.CreatedAt,
	}
}

// ToResponses maps a slice of documents.
func ToResponses(list []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(list))
	for _, doc := range list {
		out = append(out, ToResponse(doc))
	}
	return out
}
