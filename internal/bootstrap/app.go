// Package bootstrap assembles application dependencies for the API
// server and CLI entry points.
package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"resume-intel/internal/analyses"
	"resume-intel/internal/documents"
	"resume-intel/internal/jobrec"
	"resume-intel/internal/shared/config"
	"resume-intel/internal/shared/storage/db"
	"resume-intel/internal/shared/storage/object"
	localstore "resume-intel/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsRepo documents.DocumentsRepo
	AnalysesRepo  analyses.Repo

	DocumentsService *documents.Service
	AnalysesService  *analyses.Service

	DocumentsHandler *documents.Handler
	AnalysesHandler  *analyses.Handler
	JobsHandler      *jobrec.Handler
}

// Build prepares shared dependencies without wiring routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)
	store := localstore.New(cfg.LocalStoreDir)

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if sqlDB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: sqlDB}
		app.AnalysesRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.AnalysesRepo = analyses.NewMemoryRepo()
	}

	app.DocumentsService = documents.NewService(app.DocumentsRepo, app.Store)
	app.AnalysesService = analyses.NewService(app.AnalysesRepo, app.DocumentsService)

	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.AnalysesHandler = analyses.NewHandler(app.AnalysesService)
	app.JobsHandler = jobrec.NewHandler()

	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

// buildDB connects to Postgres when DATABASE_URL is set; otherwise the
// app runs on in-memory repositories. Connection or migration failures
// outside production also fall back to memory.
func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.Env == "production" {
			log.Fatalf("connect database: %v", err)
		}
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}

	if err := db.RunMigrations(ctx, conn); err != nil {
		if cfg.Env == "production" {
			log.Fatalf("run migrations: %v", err)
		}
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}
