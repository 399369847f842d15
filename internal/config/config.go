package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ServerPort string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	IdpIssuer       string
	IdpHMACSecret   string
	IdpPublicKeyPEM string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	HierarchyCacheTTL time.Duration
	StatusCacheTTL    time.Duration
	RoleCacheTTL      time.Duration

	InstitutionEmailDomain string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	SMTPHost         string
	SMTPPort         string
	NotifyWebhookURL string

	OutboxPollSpec      string
	OutboxRetentionDays int
	OutboxBatchSize     int
	OutboxMaxAttempts   int

	SeedFile           string
	CORSAllowedOrigins []string
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "helpdesk")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	IdpIssuer = getEnv("IDP_ISSUER", "")
	IdpHMACSecret = getEnv("IDP_HMAC_SECRET", "")
	IdpPublicKeyPEM = getEnv("IDP_PUBLIC_KEY_PEM", "")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvInt("REDIS_DB", 0)

	HierarchyCacheTTL = getEnvDuration("HIERARCHY_CACHE_TTL", 30*time.Minute)
	StatusCacheTTL = getEnvDuration("STATUS_CACHE_TTL", 10*time.Minute)
	RoleCacheTTL = getEnvDuration("ROLE_CACHE_TTL", 60*time.Second)

	InstitutionEmailDomain = getEnv("INSTITUTION_EMAIL_DOMAIN", "college.edu")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "ticket-images")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnv("SMTP_PORT", "587")
	NotifyWebhookURL = getEnv("NOTIFY_WEBHOOK_URL", "")

	OutboxPollSpec = getEnv("OUTBOX_POLL_SPEC", "@every 15s")
	OutboxRetentionDays = getEnvInt("OUTBOX_RETENTION_DAYS", 30)
	OutboxBatchSize = getEnvInt("OUTBOX_BATCH_SIZE", 50)
	OutboxMaxAttempts = getEnvInt("OUTBOX_MAX_ATTEMPTS", 10)

	SeedFile = getEnv("SEED_FILE", "config/seed.yaml")
	CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
