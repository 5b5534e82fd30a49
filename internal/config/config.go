package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Supported storage drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverSqlite   = "sqlite"
)

// Supported log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	BasePath        string        `env:"HTTP_BASE_PATH" envDefault:"/api"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"HTTP_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	BodyLimit       string        `env:"HTTP_BODY_LIMIT" envDefault:"64K"`
}

type StorageCfg struct {
	Driver         string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	ConnectTimeout time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"5s"`
}

type PostgresCfg struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User        string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:""`
	Database    string `env:"POSTGRES_DB" envDefault:"inquiries"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"10"`
}

type MongoCfg struct {
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Database    string `env:"MONGO_DB" envDefault:"inquiries"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type SqliteCfg struct {
	Path string `env:"SQLITE_PATH" envDefault:"inquiries.db"`
}

type RedisCfg struct {
	Enabled    bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD" envDefault:""`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	TimeToLive time.Duration `env:"REDIS_TIME_TO_LIVE" envDefault:"10m"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type Config struct {
	HTTPCfg     HTTPCfg
	StorageCfg  StorageCfg
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
	SqliteCfg   SqliteCfg
	RedisCfg    RedisCfg
	LogCfg      LogCfg
}

// Build reads configuration from environment, values from optional .env file are applied first
func Build() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	cfg.HTTPCfg.BasePath = strings.TrimRight(cfg.HTTPCfg.BasePath, "/")
	if cfg.HTTPCfg.BasePath != "" && !strings.HasPrefix(cfg.HTTPCfg.BasePath, "/") {
		cfg.HTTPCfg.BasePath = "/" + cfg.HTTPCfg.BasePath
	}

	switch cfg.StorageCfg.Driver {
	case DriverMemory, DriverPostgres, DriverMongo, DriverSqlite:
	default:
		return cfg, fmt.Errorf("unsupported storage driver %q", cfg.StorageCfg.Driver)
	}

	switch cfg.LogCfg.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return cfg, fmt.Errorf("unsupported log format %q", cfg.LogCfg.Format)
	}

	return cfg, nil
}
