package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estate-voice-api/internal/auth"
	"estate-voice-api/internal/config"
	"estate-voice-api/internal/property"
	"estate-voice-api/internal/ratelimit"
	"estate-voice-api/internal/voice"
	"estate-voice-api/pkg/logger"
	"estate-voice-api/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Local convenience only; deployed environments inject real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := property.EnsureSchema(rootCtx, db, logger.Component(log, "property.schema")); err != nil {
		log.Error("property schema init failed", "err", err)
		os.Exit(1)
	}

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	gateway := voice.NewGateway(cfg.Vapi, logger.Component(log, "voice.gateway"))

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(corsMiddleware(cfg.App))
	r.Use(securityHeaders())

	deps := routeDeps{
		Voice: voice.Handlers{
			Gateway:     gateway,
			Interpreter: voice.NewWebhookInterpreter(logger.Component(log, "voice.webhook")),
		},
		Property: property.Handlers{Service: property.NewService(property.NewPostgresRepository(db))},
		Auth:     auth.Handlers{Manager: authManager},
		AuthMW:   auth.RequireAccessToken(authManager),
		RateMW:   ratelimit.Middleware(ratelimit.NewRedisStore(rdb), cfg.App.RateLimitPerMinute),
	}
	registerRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env, "voice_configured", gateway.Initialized())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
