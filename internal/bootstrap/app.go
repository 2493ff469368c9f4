package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/ats"
	googleauth "resumeai-backend/internal/auth"
	"resumeai-backend/internal/chat"
	"resumeai-backend/internal/enhancer"
	"resumeai-backend/internal/interview"
	"resumeai-backend/internal/llm"
	"resumeai-backend/internal/llm/gemini"
	"resumeai-backend/internal/resume"
	"resumeai-backend/internal/shared/config"
	"resumeai-backend/internal/shared/server"
	"resumeai-backend/internal/shared/storage/db"
	"resumeai-backend/internal/shared/storage/object"
	localstore "resumeai-backend/internal/shared/storage/object/local"
	s3store "resumeai-backend/internal/shared/storage/object/s3"
	"resumeai-backend/internal/usage"
	"resumeai-backend/internal/zeroai"
)

// App holds the shared dependency graph behind the HTTP surface.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumeRepo   resume.Repo
	Editor       *resume.Editor
	UsageService *usage.Service

	ATSService       *ats.Service
	EnhancerService  *enhancer.Service
	InterviewService *interview.Service
	ZeroAIService    *zeroai.Service
	ChatService      *chat.Service

	GoogleAuth *googleauth.GoogleService
}

// Build wires repositories, the AI gateway, services, and the router.
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

	ai, err := buildAI(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var resumeRepo resume.Repo
	var usageSvc *usage.Service
	if sqlDB != nil {
		resumeRepo = &resume.PGRepo{DB: sqlDB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB, cfg.AIDailyLimit))
	} else {
		resumeRepo = resume.NewMemoryRepo()
		usageSvc = usage.NewService(cfg.AIDailyLimit)
	}

	editor := resume.NewEditor(resumeRepo, ai, cfg.AutosaveQuiet)

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		ResumeRepo:       resumeRepo,
		Editor:           editor,
		UsageService:     usageSvc,
		ATSService:       &ats.Service{AI: ai, Store: store},
		EnhancerService:  &enhancer.Service{AI: ai},
		InterviewService: &interview.Service{AI: ai},
		ZeroAIService:    &zeroai.Service{AI: ai},
		ChatService:      &chat.Service{AI: ai},
		GoogleAuth: googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
		),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		ResumeHandler:    resume.NewHandler(editor),
		ATSHandler:       ats.NewHandler(app.ATSService),
		EnhancerHandler:  enhancer.NewHandler(app.EnhancerService),
		InterviewHandler: interview.NewHandler(app.InterviewService),
		ZeroAIHandler:    zeroai.NewHandler(app.ZeroAIService),
		ChatHandler:      chat.NewHandler(app.ChatService),
		UsageHandler:     usage.NewHandler(usageSvc),
		UsageService:     usageSvc,
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
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildAI(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		log.Printf("bootstrap: GEMINI_API_KEY empty; AI features run in fallback mode")
		return llm.NotConfiguredClient{}, nil
	}
	return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
