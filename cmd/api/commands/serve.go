package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "tasktrio/internal/adapter/db"
	httpadapter "tasktrio/internal/adapter/http"
	"tasktrio/internal/adapter/http/handlers"
	httpmiddleware "tasktrio/internal/adapter/http/middleware"
	"tasktrio/internal/adapter/memory"
	appservice "tasktrio/internal/app/service"
	"tasktrio/internal/config"
	"tasktrio/pkg/translator"
)

type serveOptions struct {
	port string
	seed bool
}

func addServe(topLevel *cobra.Command) {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API.",
		Example: `
tasktrio serve --port 5000
tasktrio serve --seed=false
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.LoadConfig()
			if cmd.Flags().Changed("port") {
				cfg.AppPort = opts.port
			}
			if cmd.Flags().Changed("seed") {
				cfg.SeedDemo = opts.seed
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.port, "port", "p", "", "Port to listen on (overrides APP_PORT).")
	cmd.Flags().BoolVar(&opts.seed, "seed", true, "Create the demo project on startup (overrides SEED_DEMO).")

	topLevel.AddCommand(cmd)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("open session journal: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close session journal", zap.Error(err))
		}
	}()

	store := memory.NewTreeStore()
	journal := dbadapter.NewSessionRepository(db)
	taskService := appservice.NewTaskService(store)
	timerService := appservice.NewTimerService(store, journal)

	if cfg.SeedDemo {
		project, err := appservice.SeedDemo(ctx, taskService, time.Now())
		if err != nil {
			return err
		}
		logger.Info("seeded demo project", zap.String("project_id", project.ID))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestID(), httpmiddleware.GinZapMiddleware(logger))
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(journal, handlers.AppInfo{Name: cfg.AppName, Version: cfg.AppVersion}),
		Users:    handlers.NewUserHandler(),
		Projects: handlers.NewProjectHandler(taskService),
		Tasks:    handlers.NewTaskHandler(taskService),
		Timer:    handlers.NewTimerHandler(timerService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	return r.Run(addr)
}
