package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort       string        `env:"SERVER_PORT,default=8080"`
	DBDriver         string        `env:"DB_DRIVER,default=mysql"`
	MySQLDSN         string        `env:"MYSQL_DSN,default=user:password@tcp(localhost:3306)/studyhub?charset=utf8mb4&parseTime=True&loc=UTC"`
	PostgresDSN      string        `env:"POSTGRES_DSN"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisDB          int           `env:"REDIS_DB,default=0"`
	RedisPass        string        `env:"REDIS_PASSWORD"`
	JWTSecret        string        `env:"JWT_SECRET,required"`
	AllowedOrigins   []string      `env:"CORS_ALLOWED_ORIGINS,default=*"`
	LogLevel         string        `env:"LOG_LEVEL,default=info"`
	LogFormat        string        `env:"LOG_FORMAT,default=console"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SwaggerHost      string        `env:"SWAGGER_HOST"`
	ResetDB          bool          `env:"RESET_DB,default=false"`
	CategoryCacheTTL time.Duration `env:"CATEGORY_CACHE_TTL,default=10m"`
}

// Load builds Config from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom builds Config from the given lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "mysql":
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("load config: POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("load config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return c.PostgresDSN
	}
	return c.MySQLDSN
}

// String renders the config for logs with secrets redacted.
func (c *Config) String() string {
	return fmt.Sprintf("port=%s db_driver=%s redis=%q cors=%v log_level=%s otlp=%q jwt_secret=[redacted]",
		c.ServerPort, c.DBDriver, c.RedisAddr, c.AllowedOrigins, c.LogLevel, c.OTLPEndpoint)
}
