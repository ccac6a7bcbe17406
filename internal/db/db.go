package db

import (
	"context"
	"fmt"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studyhub/internal/model"
)

// Open returns a connected GORM DB instance for the given driver ("mysql" or "postgres").
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "mysql":
		return NewMySQL(dsn)
	case "postgres":
		return NewPostgres(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	normalized, err := normalizeMySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(mysql.Open(normalized), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, tunePool(db)
}

// NewPostgres returns a connected GORM DB instance backed by PostgreSQL.
func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, tunePool(db)
}

// normalizeMySQLDSN forces the options the repositories rely on: DATE columns scan into
// time.Time, and UPDATE reports matched rather than changed rows so an update that
// rewrites identical values is not mistaken for a miss.
func normalizeMySQLDSN(dsn string) (string, error) {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

func tunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	return nil
}

// Close releases the underlying sql.DB resources for the provided GORM handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Category{},
		&model.Task{},
		&model.Resource{},
		&model.Session{},
		&model.Note{},
		&model.Achievement{},
		&model.Log{},
	}
}

// Migrate creates or updates the schema. With reset it drops every table first.
func Migrate(ctx context.Context, db *gorm.DB, reset bool) error {
	migrator := db.WithContext(ctx).Migrator()
	if reset {
		if err := migrator.DropTable(Models()...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
