package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techhub_backend/internal/auth"
	"techhub_backend/internal/config"
	"techhub_backend/internal/handlers"
	"techhub_backend/internal/logger"
	"techhub_backend/internal/middleware"
	"techhub_backend/internal/models"
	"techhub_backend/internal/oauth"
	"techhub_backend/internal/repositories"
	"techhub_backend/internal/routes"
	"techhub_backend/internal/services"
	"techhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Run levanta la aplicación completa: config, logger, Mongo,
// seed del primer admin, router y shutdown ordenado.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("starting techhub backend", "env", cfg.Server.Env, "port", cfg.Server.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := repositories.Connect(ctx, cfg.Database.MongoURL, cfg.Database.Name)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongodb disconnect failed", "error", err)
		}
	}()

	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	if err := seedFirstAdmin(ctx, cfg, repositories.NewUserRepository(db)); err != nil {
		logger.Warn("first admin seeding skipped", "error", err)
	}

	router := SetupRouter(cfg, db)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-quit:
		logger.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// SetupRouter arma el engine de Gin con todos los servicios cableados.
// Separado de Run para poder levantar el stack completo en tests.
func SetupRouter(cfg *config.Config, db *mongo.Database) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	savedItemRepo := repositories.NewSavedItemRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTLMinutes)
	oauthClient := oauth.NewClient(cfg.Auth.APIBaseURL)

	authService := services.NewAuthService(userRepo, sessionRepo, issuer, oauthClient, cfg.Session.ExpireDays)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo)
	savedItemService := services.NewSavedItemService(savedItemRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	statsService := services.NewStatsService(statsRepo)

	v := validator.New()
	base := handlers.NewBaseHandler(v)

	appHandlers := &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(base, authService, cfg.Session.ExpireDays),
		User:        handlers.NewUserHandler(base, userService),
		Job:         handlers.NewJobHandler(base, jobService),
		SavedItem:   handlers.NewSavedItemHandler(base, savedItemService),
		Application: handlers.NewApplicationHandler(base, applicationService, statsService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	router.Use(middleware.Authenticate(issuer, userRepo, sessionRepo))

	routes.SetupRoutes(router, appHandlers, db)

	return router
}

// seedFirstAdmin crea la cuenta admin inicial si está configurada
// y todavía no existe ningún admin.
func seedFirstAdmin(ctx context.Context, cfg *config.Config, userRepo repositories.UserRepository) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	count, err := userRepo.CountByRole(ctx, models.UserRoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Email:        cfg.FirstAdminEmail,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
		IsActive:     true,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("first admin created", "email", cfg.FirstAdminEmail)
	return nil
}
