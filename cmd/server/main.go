package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/showcase/internal/handlers"
	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/pkg/config"
	"github.com/alimgiray/showcase/pkg/database"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize dependencies
	tagRepo := repositories.NewTagRepository(db)
	memberRepo := repositories.NewProjectMemberRepository(db)
	projectRepo := repositories.NewProjectRepository(db, tagRepo, memberRepo)
	statsRepo := repositories.NewStatsRepository(db)

	projectService := services.NewProjectService(projectRepo, tagRepo, memberRepo)
	statsService := services.NewStatsService(statsRepo)
	githubService := services.NewGitHubService(cfg.GitHub.Token)
	exportService := services.NewExportService(projectService)

	if err := handlers.RegisterValidators(); err != nil {
		logger.Fatalf("Failed to register validators: %v", err)
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	handlers.RegisterRoutes(router,
		handlers.NewProjectHandler(projectService, githubService, exportService),
		handlers.NewStatsHandler(statsService),
		handlers.NewHealthHandler(projectService),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("Server stopped with error: %v", err)
		return
	}
	logger.Info("Server stopped")
}
