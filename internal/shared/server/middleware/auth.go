package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/auth"
	"companybot-backend/internal/shared/server/respond"
)

const (
	principalKey = "principal"
	userIDKey    = "userId"
	companyIDKey = "companyId"
)

// Principal is the authenticated caller as of this request. It is rebuilt
// from storage on every request, so role or company changes made after a
// token was issued take effect without re-login.
type Principal struct {
	ID        string
	Email     string
	FullName  string
	Role      string
	CompanyID string
}

// PrincipalSource resolves a live principal by user id.
type PrincipalSource interface {
	FindPrincipal(ctx context.Context, userID string) (Principal, error)
}

// PrincipalSourceFunc adapts a function to PrincipalSource.
type PrincipalSourceFunc func(ctx context.Context, userID string) (Principal, error)

func (f PrincipalSourceFunc) FindPrincipal(ctx context.Context, userID string) (Principal, error) {
	return f(ctx, userID)
}

// Authenticate extracts and verifies the bearer token, then re-fetches the
// current user row and attaches it to the request context. The company id
// used by every downstream handler comes from this refreshed principal,
// never from the client payload.
func Authenticate(tokens *auth.Tokens, source PrincipalSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		// CORS preflights carry no Authorization header; let them through
		// without touching the rest of the chain.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			respond.Error(c, http.StatusForbidden, "No token provided")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Unauthorized: Invalid token")
			return
		}

		principal, err := source.FindPrincipal(c.Request.Context(), claims.Subject)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "User not found")
			return
		}

		c.Set(principalKey, principal)
		c.Set(userIDKey, principal.ID)
		c.Set(companyIDKey, principal.CompanyID)
		c.Next()
	}
}

// PrincipalFromContext fetches the principal attached by Authenticate.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	if c == nil {
		return Principal{}, false
	}
	val, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	principal, ok := val.(Principal)
	return principal, ok
}

// UserIDFromContext fetches the user ID set by Authenticate. Empty when the
// request is unauthenticated.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// RequireSuperAdmin gates system-level routes (companies, company admins).
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != "superadmin" {
			respond.Error(c, http.StatusForbidden, "Access Denied: Super Admin privileges required.")
			return
		}
		c.Next()
	}
}

// RequireAnyAdmin admits both company admins and superadmins.
func RequireAnyAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || (principal.Role != "admin" && principal.Role != "superadmin") {
			respond.Error(c, http.StatusForbidden, "Administrative access required")
			return
		}
		c.Next()
	}
}

// RequireCompanyAdmin admits only company admins. Superadmins are excluded
// deliberately so the system-level role cannot touch tenant-operational data.
func RequireCompanyAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != "admin" {
			respond.Error(c, http.StatusForbidden, "Access Denied: Only Company Admins can perform operational tasks.")
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
