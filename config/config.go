package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	GinMode         string
	DBUrl           string
	JWTSecret       string
	TokenTTLMinutes int
	FrontendURL     string
	// Gemini text intelligence
	GeminiAPIKey string
	GeminiModel  string
	// Job search providers
	AdzunaAppID         string
	AdzunaAppKey        string
	RapidAPIKeys        []string // key ring for the global job-search API
	JobsGlobalHost      string
	ActiveJobsKey       string
	ActiveJobsHost      string
	JobsDefaultCountry  string
	JobsDefaultLocation string
	JobsPerPage         int
	JobMaxAgeDays       int
	JobCacheMinutes     int
	// Uploads
	MaxUploadMB int
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitEnabled         bool
	RateLimitGlobalThreshold int
	RateLimitLoginThreshold  int
	RateLimitWindowMinutes   int
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	// Object storage (resume documents)
	S3Enabled         bool
	S3Provider        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	WasabiEndpoint    string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", ""),
		DBUrl:           getEnv("DATABASE_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", 60),
		FrontendURL:     strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Gemini
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		// Job search providers
		AdzunaAppID:         getEnv("ADZUNA_APP_ID", ""),
		AdzunaAppKey:        getEnv("ADZUNA_APP_KEY", ""),
		RapidAPIKeys:        getEnvList("RAPIDAPI_KEYS"),
		JobsGlobalHost:      getEnv("JOBSEARCH_GLOBAL_HOST", "jobs-search-api.p.rapidapi.com"),
		ActiveJobsKey:       getEnv("ACTIVE_JOBS_DB_KEY", ""),
		ActiveJobsHost:      getEnv("ACTIVE_JOBS_DB_HOST", "active-jobs-db.p.rapidapi.com"),
		JobsDefaultCountry:  getEnv("JOBS_DEFAULT_COUNTRY", "us"),
		JobsDefaultLocation: getEnv("JOBS_DEFAULT_LOCATION", "remote"),
		JobsPerPage:         getEnvInt("JOBS_PER_PAGE", 20),
		JobMaxAgeDays:       getEnvInt("JOB_MAX_AGE_DAYS", 30),
		JobCacheMinutes:     getEnvInt("JOB_CACHE_MINUTES", 30),
		// Uploads
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitEnabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),   // 10 login attempts per window
		RateLimitWindowMinutes:   getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 1),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		// Object storage
		S3Enabled:         getEnvBool("S3_ENABLED", false),
		S3Provider:        getEnv("S3_PROVIDER", "aws"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		WasabiEndpoint:    getEnv("WASABI_ENDPOINT", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Authentication will not work.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Job-search caching and rate limiting are degraded.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated environment variable, dropping empty
// entries.
func getEnvList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
