package companies

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/server/respond"
	"companybot-backend/internal/users"
)

// Handler wires superadmin provisioning routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches provisioning routes. The group is expected to be
// superadmin-gated already.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/companies", h.create)
	rg.GET("/companies", h.list)
	rg.POST("/admins", h.createAdmin)
}

type createRequest struct {
	Name string `json:"name"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	company, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Company name is required")
		case errors.Is(err, ErrNameTaken):
			respond.Error(c, http.StatusConflict, "Company name already exists")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.JSON(c, http.StatusCreated, ToResponse(company))
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error fetching companies")
		return
	}
	respond.OK(c, ToResponses(list))
}

type createAdminRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	CompanyID string `json:"company_id"`
}

func (h *Handler) createAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.Svc.CreateAdmin(c.Request.Context(), req.CompanyID, users.CreateInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Company not found")
		case errors.Is(err, users.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, users.ErrEmailTaken):
			respond.Error(c, http.StatusConflict, "This email is already registered.")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error creating company admin")
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Company Admin created successfully",
		"user":    users.ToResponse(admin),
	})
}
