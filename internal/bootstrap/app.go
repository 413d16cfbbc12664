package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "career-backend/internal/auth"
	"career-backend/internal/documents"
	"career-backend/internal/llm"
	openai "career-backend/internal/llm/openai"
	"career-backend/internal/profile"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/server"
	"career-backend/internal/shared/storage/db"
	"career-backend/internal/staging"
	"career-backend/internal/users"
)

// App holds the wired application graph.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	DocumentsRepo    documents.Repo
	ProfilesRepo     profile.Repo
	UsersRepo        users.Repo
	DocumentsService *documents.Service
	ProfileService   *profile.Service
	UsersService     *users.Service
	DocumentsHandler *documents.Handler
	ProfileHandler   *profile.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		ProfileHandler:   app.ProfileHandler,
		UsersHandler:     app.UsersHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var docRepo documents.Repo
	var profileRepo profile.Repo
	var userRepo users.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		profileRepo = &profile.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		profileRepo = profile.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			if !isDevLike(app.Config.Env) {
				return err
			}
			log.Printf("bootstrap: openai client unavailable; profile extraction disabled: %v", err)
		} else {
			llmClient = openaiClient
		}
	}

	userSvc := users.NewService(userRepo)
	profileSvc := profile.NewService(profileRepo)
	docSvc := &documents.Service{
		Staging:   staging.New(app.Config.StagingDir),
		Repo:      docRepo,
		Users:     userSvc,
		Profiles:  profileRepo,
		Extractor: profile.NewExtractor(llmClient),
	}

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.DocumentsRepo = docRepo
	app.ProfilesRepo = profileRepo
	app.UsersRepo = userRepo
	app.DocumentsService = docSvc
	app.ProfileService = profileSvc
	app.UsersService = userSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.ProfileHandler = profile.NewHandler(profileSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}
