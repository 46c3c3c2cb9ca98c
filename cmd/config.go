package cmd

import (
	"fmt"
	"time"

	"storefront/internal/adapters/out/storage"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	HTTPPort  string `env:"HTTP_PORT"  envDefault:"3000" validate:"required,numeric"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`

	DBDriver       string `env:"DB_DRIVER"         envDefault:"postgres" validate:"oneof=postgres sqlite"`
	DBHost         string `env:"DB_HOST"                                 validate:"required_if=DBDriver postgres"`
	DBPort         int    `env:"DB_PORT"           envDefault:"5432"     validate:"gte=1,lte=65535"`
	DBUser         string `env:"DB_USER"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME"`
	DBSslMode      string `env:"DB_SSLMODE"        envDefault:"disable"`
	DBSQLitePath   string `env:"DB_SQLITE_PATH"    envDefault:":memory:"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"25"       validate:"gte=0"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"        validate:"gte=0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// LoadConfig reads the process environment. Call godotenv first to pick up a .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c Config) Storage() storage.Config {
	return storage.Config{
		Driver: storage.Driver(c.DBDriver),
		Postgres: storage.PostgresConfig{
			Host:     c.DBHost,
			Port:     c.DBPort,
			User:     c.DBUser,
			Password: c.DBPassword,
			Name:     c.DBName,
			SSLMode:  c.DBSslMode,
		},
		SQLitePath:   c.DBSQLitePath,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
	}
}
