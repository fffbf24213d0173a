package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/metrics"
	"companybot-backend/internal/shared/server/respond"
)

// Handler exposes the login endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches authentication routes. The group must NOT be
// token-gated; login is the way in.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
	CompanyID   string `json:"company_id"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.IncLoginFailure()
		switch {
		case errors.Is(err, ErrUserNotFound):
			respond.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	metrics.IncLoginSuccess()
	respond.OK(c, gin.H{
		"token": result.Token,
		"user": loginUser{
			ID:          result.User.ID,
			FullName:    result.User.FullName,
			Role:        result.User.Role,
			CompanyName: result.CompanyName,
			CompanyID:   result.User.CompanyID,
		},
	})
}
