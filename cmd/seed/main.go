package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"studyhub/internal/cache"
	"studyhub/internal/config"
	"studyhub/internal/db"
	"studyhub/internal/logging"
	"studyhub/internal/repository"
	"studyhub/internal/service"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("init logger")
	}
	log.Logger = logger

	log.Info().Msg("starting seed script")

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer db.Close(gormDB)

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(ctx, gormDB, false); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	names, source, err := categoryNames(os.Getenv("SEED_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("load category seed")
	}
	log.Info().Str("source", source).Int("categories", len(names)).Msg("seeding categories")

	created, err := db.SeedCategories(ctx, gormDB, names)
	if err != nil {
		log.Fatal().Err(err).Msg("seed categories")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	categories := service.NewCategoryService(repository.NewCategoryRepository(gormDB), cacheClient, cfg.CategoryCacheTTL)
	if err := categories.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("invalidate category cache")
	}

	log.Info().
		Int("created", created).
		Int("existing", len(names)-created).
		Msg("seed completed successfully")
}

// categoryNames reads the YAML seed file at path, or returns the defaults when
// path is empty.
func categoryNames(path string) ([]string, string, error) {
	if path == "" {
		return db.DefaultCategories, "defaults", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	defer f.Close()

	names, err := db.LoadCategoryNames(f)
	return names, path, err
}
