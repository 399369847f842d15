// @title Campus Helpdesk API
// @version 1.0
// @description Ticketing backend for hostel and campus support requests.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/campus-helpdesk/docs"
	"github.com/linskybing/campus-helpdesk/internal/api/middleware"
	"github.com/linskybing/campus-helpdesk/internal/api/routes"
	"github.com/linskybing/campus-helpdesk/internal/application"
	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/config"
	"github.com/linskybing/campus-helpdesk/internal/config/db"
	"github.com/linskybing/campus-helpdesk/internal/migrations"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/internal/storage"
)

func main() {
	config.LoadConfig()
	db.Init()

	if err := migrations.Run(db.DB, config.SeedFile); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		slog.Error("failed to access connection pool", "error", err)
		os.Exit(1)
	}

	deps := application.Deps{
		DB:           sqlDB,
		EmailDomain:  config.InstitutionEmailDomain,
		HierarchyTTL: config.HierarchyCacheTTL,
		StatusTTL:    config.StatusCacheTTL,
		RoleTTL:      config.RoleCacheTTL,
		WebhookURL:   config.NotifyWebhookURL,
	}
	if config.SMTPHost != "" {
		deps.SMTPAddr = config.SMTPHost + ":" + config.SMTPPort
	}

	if config.RedisAddr != "" {
		rc := cache.NewRedis(config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err := rc.Ping(context.Background()); err != nil {
			slog.Warn("redis unreachable, falling back to in-process cache", "addr", config.RedisAddr, "error", err)
		} else {
			defer rc.Close()
			deps.Cache = rc
		}
	}

	if config.MinioEndpoint != "" {
		store, err := storage.New(config.MinioEndpoint, config.MinioAccessKey, config.MinioSecretKey, config.MinioBucket, config.MinioUseSSL)
		if err != nil {
			slog.Error("failed to create object storage client", "error", err)
			os.Exit(1)
		}
		if err := store.EnsureBucket(context.Background()); err != nil {
			slog.Warn("image bucket not ready", "bucket", config.MinioBucket, "error", err)
		}
		deps.Images = store
		deps.Storage = store
	}

	verifier, err := middleware.NewVerifier(config.IdpIssuer, config.IdpHMACSecret, config.IdpPublicKeyPEM)
	if err != nil {
		slog.Error("invalid identity provider settings", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, deps)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(config.CORSAllowedOrigins))
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, repos, services, verifier)

	port := ":" + config.ServerPort
	slog.Info("starting API server", "addr", port)
	if err := router.Run(port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
