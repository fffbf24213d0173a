package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/metrics"
	"companybot-backend/internal/shared/pagination"
	"companybot-backend/internal/shared/server/middleware"
	"companybot-backend/internal/shared/server/respond"
)

const maxUploadSize = 25 << 20 // 25MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterAdminRoutes attaches document routes to the admin group. Listing
// stays open to every authenticated user so the chat sidebar can populate;
// writes are strict company-admin.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/docs", h.list)
	rg.POST("/docs", middleware.RequireCompanyAdmin(), h.upload)
	rg.DELETE("/docs/:id", middleware.RequireCompanyAdmin(), h.delete)
}

// RegisterChatRoutes exposes the same listing under the chat group.
func (h *Handler) RegisterChatRoutes(rg *gin.RouterGroup) {
	rg.GET("/docs", h.list)
}

// RegisterHookRoutes attaches the workflow status callback. The group is
// expected to be shared-secret gated.
func (h *Handler) RegisterHookRoutes(rg *gin.RouterGroup) {
	rg.POST("/docs/:id/status", h.setStatus)
}

func (h *Handler) upload(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not found")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read file")
		return
	}
	defer file.Close()

	result, err := h.Svc.Upload(c.Request.Context(), principal.CompanyID, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "No file uploaded")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	metrics.IncUpload()
	if !result.Notified {
		metrics.IncUploadNotifyFailed()
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message":  "Document uploaded and processing started",
		"document": ToResponse(result.Document),
		"notified": result.Notified,
	})
}

func (h *Handler) list(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not found")
		return
	}

	params := pagination.Parse(c.Query("page"), c.Query("limit"))
	list, envelope, err := h.Svc.List(c.Request.Context(), principal.CompanyID, params)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error fetching documents")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"documents":  ToResponses(list),
		"pagination": envelope,
	})
}

func (h *Handler) delete(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not found")
		return
	}

	err := h.Svc.Delete(c.Request.Context(), principal.CompanyID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Document not found in your company")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Delete operation failed")
		return
	}

	respond.Message(c, "Document deleted successfully")
}

type statusRequest struct {
	Status      string `json:"status"`
	AutoSummary string `json:"auto_summary"`
}

func (h *Handler) setStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.Svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status, req.AutoSummary)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Document not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "Status update failed")
		}
		return
	}

	respond.Message(c, "Status updated")
}
