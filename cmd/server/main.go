package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"studyhub/docs" // swagger docs
	"studyhub/internal/auth"
	"studyhub/internal/cache"
	"studyhub/internal/config"
	"studyhub/internal/db"
	"studyhub/internal/handler"
	"studyhub/internal/logging"
	"studyhub/internal/metrics"
	"studyhub/internal/repository"
	"studyhub/internal/router"
	"studyhub/internal/service"
	"studyhub/internal/telemetry"
)

const serviceName = "studyhub"

// @title Studyhub API
// @version 1.0
// @description Personal productivity API: tasks, sessions, notes, resources, achievements and daily logs.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-access-token
// @description Session token returned by /login.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("init logger")
	}
	log.Logger = logger
	log.Info().Stringer("config", cfg).Msg("configuration loaded")

	shutdownTracing, err := telemetry.Init(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("init otel")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown otel")
		}
	}()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(ctx, gormDB, cfg.ResetDB); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	m := metrics.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	hasher := auth.NewPasswordHasher(auth.DefaultCost)

	// Initialize services
	authService, err := service.NewAuthService(userRepo, hasher, jwtService, m)
	if err != nil {
		log.Fatal().Err(err).Msg("init auth service")
	}
	categoryService := service.NewCategoryService(categoryRepo, cacheClient, cfg.CategoryCacheTTL)

	seeded, err := db.SeedCategories(ctx, gormDB, db.DefaultCategories)
	if err != nil {
		log.Fatal().Err(err).Msg("seed categories")
	}
	if seeded > 0 {
		log.Info().Int("created", seeded).Msg("default categories seeded")
		if err := categoryService.Invalidate(ctx); err != nil {
			log.Warn().Err(err).Msg("invalidate category cache")
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Register routes
	router.Register(e, router.Deps{
		Logger:         logger,
		Metrics:        m,
		Tokens:         jwtService,
		Users:          userRepo,
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceName:    serviceName,

		Auth:         handler.NewAuthHandler(authService),
		Tasks:        handler.NewTaskHandler(service.NewTaskService(taskRepo, categoryRepo)),
		Categories:   handler.NewCategoryHandler(categoryService),
		Resources:    handler.NewResourceHandler(service.NewResourceService(repository.NewResourceRepository(gormDB))),
		Sessions:     handler.NewSessionHandler(service.NewSessionService(repository.NewSessionRepository(gormDB), taskRepo)),
		Notes:        handler.NewNoteHandler(service.NewNoteService(repository.NewNoteRepository(gormDB))),
		Achievements: handler.NewAchievementHandler(service.NewAchievementService(repository.NewAchievementRepository(gormDB))),
		Logs:         handler.NewLogHandler(service.NewLogService(repository.NewLogRepository(gormDB))),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Info().Str("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").Msg("swagger documentation available")

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info().Str("addr", addr).Msg("starting studyhub")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
}
