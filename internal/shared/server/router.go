package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	loginauth "companybot-backend/internal/auth"
	"companybot-backend/internal/chat"
	"companybot-backend/internal/companies"
	"companybot-backend/internal/documents"
	sharedauth "companybot-backend/internal/shared/auth"
	"companybot-backend/internal/shared/config"
	"companybot-backend/internal/shared/metrics"
	"companybot-backend/internal/shared/server/middleware"
	"companybot-backend/internal/shared/server/respond"
	"companybot-backend/internal/users"
)

// RouterDeps carries everything the router needs; bootstrap fills it in.
type RouterDeps struct {
	Config          config.Config
	Tokens          *sharedauth.Tokens
	Principals      middleware.PrincipalSource
	AuthHandler     *loginauth.Handler
	CompanyHandler  *companies.Handler
	UserHandler     *users.Handler
	DocumentHandler *documents.Handler
	ChatHandler     *chat.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	deps.AuthHandler.RegisterRoutes(r.Group("/api/auth"))

	authenticated := middleware.Authenticate(deps.Tokens, deps.Principals)

	super := r.Group("/api/super", authenticated, middleware.RequireSuperAdmin())
	deps.CompanyHandler.RegisterRoutes(super)

	admin := r.Group("/api/admin", authenticated)
	deps.UserHandler.RegisterRoutes(admin)
	deps.DocumentHandler.RegisterAdminRoutes(admin)

	chatGroup := r.Group("/api/chat", authenticated, middleware.RateLimit(chatRateLimits()))
	deps.ChatHandler.RegisterRoutes(chatGroup)
	deps.DocumentHandler.RegisterChatRoutes(chatGroup)

	hooks := r.Group("/api/hooks", middleware.HookSecret(deps.Config.HookSecret))
	deps.DocumentHandler.RegisterHookRoutes(hooks)

	return r
}

// chatRateLimits throttles the relay endpoint harder than sidebar reads;
// every chat query fans out to the workflow engine.
func chatRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/chat/query" {
				return "CHAT"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"CHAT":    {Rate: 1, Burst: 5},
			"DEFAULT": {Rate: 10, Burst: 30},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
