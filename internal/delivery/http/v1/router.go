package v1

import (
	"time"

	"career-platform-backend/config"
	"career-platform-backend/internal/delivery/http/middleware"
	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/usecase"
	"career-platform-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	ResumeUC         domain.ResumeUsecase
	AnalysisUC       domain.AnalysisUsecase
	JobUC            domain.JobUsecase
	RecommendationUC domain.RecommendationUsecase
	CareerUC         domain.CareerUsecase
	FavoriteUC       domain.FavoriteUsecase
	HealthUC         usecase.HealthUsecase
	Tokens           *auth.TokenManager
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	isProduction := deps.Config.GinMode == "release"

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, isProduction)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Route-level limiters default to pass-throughs so handlers can always
	// register them, even when rate limiting is switched off.
	noLimit := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	loginLimiter := noLimit
	uploadLimiter := noLimit
	if deps.Config.RateLimitEnabled {
		window := time.Duration(deps.Config.RateLimitWindowMinutes) * time.Minute
		r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
		loginLimiter = middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))
		uploadLimiter = middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(10, window))
	}

	// Health Check
	NewHealthHandler(r, deps.HealthUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(api, protected, loginLimiter, deps.AuthUC)
		NewJobHandler(api, protected, deps.JobUC)
		NewResumeHandler(protected, uploadLimiter, deps.ResumeUC)
		NewAnalysisHandler(protected, deps.AnalysisUC)
		NewRecommendationHandler(protected, deps.RecommendationUC)
		NewCareerHandler(protected, deps.CareerUC)
		NewFavoriteHandler(protected, deps.FavoriteUC)
	}

	return r
}
