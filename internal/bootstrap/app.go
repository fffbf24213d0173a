package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	loginauth "companybot-backend/internal/auth"
	"companybot-backend/internal/chat"
	"companybot-backend/internal/companies"
	"companybot-backend/internal/documents"
	"companybot-backend/internal/n8n"
	sharedauth "companybot-backend/internal/shared/auth"
	"companybot-backend/internal/shared/config"
	"companybot-backend/internal/shared/server"
	"companybot-backend/internal/shared/server/middleware"
	"companybot-backend/internal/shared/storage/db"
	"companybot-backend/internal/shared/storage/object"
	localstore "companybot-backend/internal/shared/storage/object/local"
	s3store "companybot-backend/internal/shared/storage/object/s3"
	"companybot-backend/internal/users"
)

// App holds the wired dependency graph.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Tokens *sharedauth.Tokens
	N8N    *n8n.Client

	CompaniesRepo companies.Repo
	UsersRepo     users.Repo
	DocumentsRepo documents.Repo

	AuthService      *loginauth.Service
	UsersService     *users.Service
	CompaniesService *companies.Service
	DocumentsService *documents.Service
	ChatService      *chat.Service
}

// Build prepares dependencies and the router. With no DATABASE_URL in a
// dev-like environment it falls back to in-memory repositories, which is
// enough for local frontend work without Postgres.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Tokens: sharedauth.NewTokens(cfg.JWTSecret),
		N8N:    n8n.NewClient(cfg.DocumentWebhookURL, cfg.ChatWebhookURL),
	}

	if sqlDB != nil {
		app.CompaniesRepo = &companies.PGRepo{DB: sqlDB}
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
		app.DocumentsRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		app.CompaniesRepo = companies.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
		app.DocumentsRepo = documents.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.CompaniesService = companies.NewService(app.CompaniesRepo, app.UsersService)
	app.AuthService = loginauth.NewService(app.UsersRepo, app.CompaniesRepo, app.Tokens)
	app.DocumentsService = documents.NewService(app.DocumentsRepo, app.Store, app.N8N)
	app.ChatService = chat.NewService(app.N8N)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Tokens:          app.Tokens,
		Principals:      principalSource(app.UsersRepo),
		AuthHandler:     loginauth.NewHandler(app.AuthService),
		CompanyHandler:  companies.NewHandler(app.CompaniesService),
		UserHandler:     users.NewHandler(app.UsersService),
		DocumentHandler: documents.NewHandler(app.DocumentsService),
		ChatHandler:     chat.NewHandler(app.ChatService),
	})

	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// principalSource adapts the users repo to the middleware's per-request
// live lookup.
func principalSource(repo users.Repo) middleware.PrincipalSource {
	return middleware.PrincipalSourceFunc(func(ctx context.Context, userID string) (middleware.Principal, error) {
		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return middleware.Principal{}, err
		}
		return middleware.Principal{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      user.Role,
			CompanyID: user.CompanyID,
		}, nil
	})
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.ObjectStoreType)) {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	case "", "local":
		return localstore.New(cfg.LocalStoreDir), nil
	default:
		return nil, fmt.Errorf("unknown OBJECT_STORE type %q", cfg.ObjectStoreType)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development", "test", "local", "":
		return true
	}
	return false
}
