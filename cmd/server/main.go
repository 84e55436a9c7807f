package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"muaiadhadad.me/portfolio/common/id"
	"muaiadhadad.me/portfolio/common/logger"
	"muaiadhadad.me/portfolio/common/otel"
	"muaiadhadad.me/portfolio/core/config"
	"muaiadhadad.me/portfolio/internal/chat"
	"muaiadhadad.me/portfolio/internal/contact"
	"muaiadhadad.me/portfolio/internal/http/handler"
	"muaiadhadad.me/portfolio/internal/http/middleware"
	httprouter "muaiadhadad.me/portfolio/internal/http/router"
	"muaiadhadad.me/portfolio/internal/llm"
	"muaiadhadad.me/portfolio/internal/profile"
	"muaiadhadad.me/portfolio/internal/storage"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "portfolio api starting", "env", cfg.Env, "user", cfg.GitHub.Username)

	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	var cache profile.Cache
	if cfg.Cache.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		cache = profile.NewRedisCache(redisClient, profile.DefaultTTL)
		slog.InfoContext(ctx, "profile cache backed by redis")
	} else {
		cache = profile.NewMemoryCache(profile.DefaultTTL)
	}

	profileService := profile.NewService(
		profile.NewGitHubClient(cfg.GitHub.APIToken),
		cache,
		profile.Config{Username: cfg.GitHub.Username},
	)

	var llmClient llm.Client
	if cfg.Chat.Enabled() {
		llmClient, err = llm.New(llm.Config{
			APIKey:  cfg.Chat.Token,
			BaseURL: cfg.Chat.BaseURL,
			Model:   cfg.Chat.Model,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to build completion client", "error", err)
			os.Exit(1)
		}
	} else {
		slog.WarnContext(ctx, "GITHUB_MODELS_TOKEN not set; /api/chat will report errors")
	}
	chatService := chat.NewService(llmClient, profileService)

	contactService := contact.NewService(
		contact.NewResendMailer(cfg.Mail.APIKey),
		cfg.Mail.From,
		cfg.Mail.Owner,
	)

	var signer storage.Signer
	if cfg.Storage.Enabled() {
		s3Signer, err := storage.NewS3Signer(ctx, storage.Config{
			Endpoint:       cfg.Storage.Endpoint,
			Bucket:         cfg.Storage.Bucket,
			Region:         cfg.Storage.Region,
			AccessKey:      cfg.Storage.AccessKey,
			SecretKey:      cfg.Storage.SecretKey,
			ForcePathStyle: cfg.Storage.ForcePathStyle,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to build storage signer", "error", err)
			os.Exit(1)
		}
		signer = s3Signer
	} else {
		slog.WarnContext(ctx, "storage not configured; /api/presign will report errors")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, httprouter.Handlers{
		Chat:    handler.NewChatHandler(chatService),
		Contact: handler.NewContactHandler(contactService),
		Presign: handler.NewPresignHandler(signer),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// WriteTimeout stays 0: chat responses are long-lived SSE streams
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, handlers httprouter.Handlers) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, handlers)

	return router
}

const banner = `
██████╗  ██████╗ ██████╗ ████████╗███████╗ ██████╗ ██╗     ██╗ ██████╗
██╔══██╗██╔═══██╗██╔══██╗╚══██╔══╝██╔════╝██╔═══██╗██║     ██║██╔═══██╗
██████╔╝██║   ██║██████╔╝   ██║   █████╗  ██║   ██║██║     ██║██║   ██║
██╔═══╝ ██║   ██║██╔══██╗   ██║   ██╔══╝  ██║   ██║██║     ██║██║   ██║
██║     ╚██████╔╝██║  ██║   ██║   ██║     ╚██████╔╝███████╗██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚═╝      ╚═════╝ ╚══════╝╚═╝ ╚═════╝
`
