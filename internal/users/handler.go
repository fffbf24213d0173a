package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/pagination"
	"companybot-backend/internal/shared/server/middleware"
	"companybot-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches user-management routes to the admin group. All of
// them are strict company-admin routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", middleware.RequireCompanyAdmin(), h.list)
	rg.POST("/users", middleware.RequireCompanyAdmin(), h.create)
	rg.DELETE("/users/:id", middleware.RequireCompanyAdmin(), h.delete)
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
		respond.Error(c, http.StatusInternalServerError, "Error fetching users")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"users":      ToResponses(list),
		"pagination": envelope,
	})
}

type createRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	// Role is accepted for backwards compatibility but ignored: users
	// created through this path are always regular users.
	Role string `json:"role"`
}

func (h *Handler) create(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not found")
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Svc.Create(c.Request.Context(), principal.CompanyID, CreateInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, ErrEmailTakenInCompany):
			respond.Error(c, http.StatusConflict, "User already exists in your company.")
		case errors.Is(err, ErrEmailTakenElsewhere):
			respond.Error(c, http.StatusConflict, "This email is registered with another organization. Please use a different email or contact support.")
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusConflict, "This email is already registered.")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    ToResponse(user),
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
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "User not found in your company")
		case errors.Is(err, ErrProtectedRole):
			respond.Error(c, http.StatusForbidden, "Unauthorized: Cannot delete administrative roles")
		default:
			respond.Error(c, http.StatusInternalServerError, "Delete operation failed")
		}
		return
	}

	respond.Message(c, "User access revoked successfully")
}
