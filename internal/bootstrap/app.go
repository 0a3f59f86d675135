package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/evidence"
	"assessment-backend/internal/notify"
	"assessment-backend/internal/reports"
	"assessment-backend/internal/responses"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/sessions"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/server"
	"assessment-backend/internal/shared/storage/db"
	"assessment-backend/internal/shared/storage/object"
	localstore "assessment-backend/internal/shared/storage/object/local"
	s3store "assessment-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	CatalogService  *catalog.Service
	SessionService  *sessions.Service
	ResponseService *responses.Service
	EvidenceService *evidence.Service
	ReportService   *reports.Service
}

// Build prepares shared dependencies and wires routes.
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
	}
	buildServices(ctx, app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		CatalogHandler:  catalog.NewHandler(app.CatalogService),
		SessionHandler:  sessions.NewHandler(app.SessionService),
		ResponseHandler: responses.NewHandler(app.ResponseService),
		EvidenceHandler: evidence.NewHandler(app.EvidenceService),
		ReportHandler:   reports.NewHandler(app.ReportService),
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
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		_ = sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(ctx context.Context, app *App) {
	var catalogRepo catalog.Repo
	var sessionRepo sessions.Repo
	var responseRepo responses.Repo
	var archiveRepo reports.ArchiveRepo

	if app.DB != nil {
		catalogRepo = &catalog.PGRepo{DB: app.DB}
		sessionRepo = &sessions.PGRepo{DB: app.DB}
		responseRepo = &responses.PGRepo{DB: app.DB}
		archiveRepo = &reports.PGArchiveRepo{DB: app.DB}
	} else {
		catalogRepo = catalog.NewMemoryRepo(catalog.PlaceholderCatalog()...)
		archiveRepo = reports.NewMemoryArchiveRepo()
	}

	scorer := scoring.KeywordScorer{}

	app.CatalogService = catalog.NewService(catalogRepo, app.Config.PageSize)
	app.CatalogService.Load(ctx)

	app.SessionService = sessions.NewService(sessionRepo)
	app.ResponseService = responses.NewService(responseRepo, app.CatalogService, app.SessionService, scorer)
	app.EvidenceService = &evidence.Service{
		Store:     app.Store,
		Responses: app.ResponseService,
		Sessions:  app.SessionService,
		Catalog:   app.CatalogService,
	}
	app.ReportService = reports.NewService(
		app.CatalogService,
		app.ResponseService,
		app.SessionService,
		scorer,
		archiveRepo,
		notify.LogNotifier{},
		app.Config.ReportTitle,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
