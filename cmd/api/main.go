package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-platform-backend/config"
	_ "career-platform-backend/docs" // Important for Swagger
	"career-platform-backend/internal/analyzer"
	v1 "career-platform-backend/internal/delivery/http/v1"
	"career-platform-backend/internal/intelligence"
	"career-platform-backend/internal/jobsearch"
	"career-platform-backend/internal/repository/postgres"
	"career-platform-backend/internal/usecase"
	"career-platform-backend/pkg/auth"
	"career-platform-backend/pkg/database"
	"career-platform-backend/pkg/email"
	"career-platform-backend/pkg/logger"
	"career-platform-backend/pkg/redis"
	"career-platform-backend/pkg/storage"
	"career-platform-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Career Platform API
// @version         1.0
// @description     Resume analysis, job aggregation and match ranking backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting career platform backend", "port", cfg.Port)

	// 3. Setup Validation
	validate := validator.New()
	validation.RegisterValidators(validate)

	// 4. Setup Database
	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Log.Info("Database connection established")

	// 5. Setup Redis (job-search cache and rate limiting degrade without it)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", "error", err)
	}
	defer redis.Close()

	// 6. Setup Object Storage
	store, err := storage.New(ctx, storage.Config{
		Enabled:         cfg.S3Enabled,
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		WasabiEndpoint:  cfg.WasabiEndpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if !store.IsConfigured() {
		logger.Log.Warn("Object storage disabled - resume documents kept in database only")
	}

	// 7. Setup Text Intelligence
	gemini, err := intelligence.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Error("Failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}
	defer gemini.Close()
	if !gemini.IsConfigured() {
		logger.Log.Warn("Gemini not configured - falling back to rule-based analysis")
	}

	// 8. Setup Job Search Providers
	var providers []jobsearch.Provider
	if cfg.ActiveJobsKey != "" {
		providers = append(providers, jobsearch.NewActiveJobs(jobsearch.ActiveJobsConfig{
			APIKey: cfg.ActiveJobsKey,
			Host:   cfg.ActiveJobsHost,
		}))
	}
	if len(cfg.RapidAPIKeys) > 0 {
		providers = append(providers, jobsearch.NewJobsGlobal(jobsearch.JobsGlobalConfig{
			APIKeys: cfg.RapidAPIKeys,
			Host:    cfg.JobsGlobalHost,
		}))
	}
	if cfg.AdzunaAppID != "" && cfg.AdzunaAppKey != "" {
		providers = append(providers, jobsearch.NewAdzuna(jobsearch.AdzunaConfig{
			AppID:      cfg.AdzunaAppID,
			AppKey:     cfg.AdzunaAppKey,
			Country:    cfg.JobsDefaultCountry,
			MaxAgeDays: cfg.JobMaxAgeDays,
		}))
	}
	searcher := jobsearch.NewAggregator(providers, redis.Client(), time.Duration(cfg.JobCacheMinutes)*time.Minute)
	if !searcher.IsConfigured() {
		logger.Log.Warn("No job search providers configured - recommendations fall back to stored jobs")
	}

	// 9. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	analysisRepo := postgres.NewAnalysisRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	recommendationRepo := postgres.NewRecommendationRepository(dbPool)
	favoriteRepo := postgres.NewFavoriteRepository(dbPool)

	// 10. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - welcome emails will be skipped")
	}

	// 11. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	resumeAnalyzer := analyzer.New(gemini)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, emailService, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, analysisRepo, resumeAnalyzer, gemini, store, cfg.MaxUploadMB)
	analysisUC := usecase.NewAnalysisUsecase(analysisRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, searcher, cfg.JobsDefaultLocation, cfg.JobsPerPage)
	recommendationUC := usecase.NewRecommendationUsecase(analysisRepo, jobRepo, recommendationRepo, searcher, cfg.JobsDefaultLocation)
	careerUC := usecase.NewCareerUsecase(analysisRepo)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo)
	healthUC := usecase.NewHealthUsecase(dbPool, redis.Client())

	// 12. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		ResumeUC:         resumeUC,
		AnalysisUC:       analysisUC,
		JobUC:            jobUC,
		RecommendationUC: recommendationUC,
		CareerUC:         careerUC,
		FavoriteUC:       favoriteUC,
		HealthUC:         healthUC,
		Tokens:           tokens,
		Config:           cfg,
	})

	// 13. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
