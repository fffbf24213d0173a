package companies

import "time"

// CompanyResponse is the wire shape for a company.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse maps a Company to its wire shape.
func ToResponse(company Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		CreatedAt: company.CreatedAt,
	}
}

// ToResponses maps a slice of companies.
func ToResponses(list []Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(list))
	for _, company := range list {
		out = append(out, ToResponse(company))
	}
	return out
}
