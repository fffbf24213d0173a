package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/server/middleware"
	"companybot-backend/internal/shared/server/respond"
)

// Handler exposes the chat query endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes. The group must be authenticated;
// every role may chat.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/query", h.query)
}

type queryRequest struct {
	Question       string   `json:"question"`
	SelectedDocIDs []string `json:"selected_doc_ids"`
}

func (h *Handler) query(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not found")
		return
	}

	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The tenant always comes from the refreshed principal, never from the
	// request payload.
	answer, err := h.Svc.Query(c.Request.Context(), principal.CompanyID, req.Question, req.SelectedDocIDs)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) {
			respond.Error(c, http.StatusBadRequest, "Question is required")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond.OK(c, gin.H{"answer": answer.Text})
}
