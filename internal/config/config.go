package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type key string

const (
	KeyLogger = key("logger")
	KeyUser   = key("user")
)

type Config struct {
	Service  Service
	API      API
	Storage  Storage
	Query    Query
	MockAPI  MockAPI
	Logger   Logger
	Platform Platform
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"moviemagic"`
}

type API struct {
	BaseURL string `env:"API_BASE_URL" env-default:"http://localhost:8000"`
	// Timeout of zero disables the request deadline.
	Timeout time.Duration `env:"API_TIMEOUT" env-default:"0s"`
}

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"sqlite3"`
	DSN    string `env:"STORAGE_DSN" env-default:"moviemagic.db"`
}

type Query struct {
	StaleTime time.Duration `env:"QUERY_STALE_TIME" env-default:"30s"`
	Retry     int           `env:"QUERY_RETRY" env-default:"1"`
}

type MockAPI struct {
	Port           string        `env:"MOCK_API_PORT" env-default:"8000"`
	JWTSecret      string        `env:"MOCK_API_JWT_SECRET" env-default:"movie-magic-dev-secret"`
	TokenTTL       time.Duration `env:"MOCK_API_TOKEN_TTL" env-default:"30m"`
	AllowedOrigins []string      `env:"MOCK_API_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
	// File receives stdlib log output while the terminal UI owns the screen.
	File string `env:"LOGGER_FILE" env-default:"moviemagic.log"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env variables: %w", err)
	}

	if cfg.Storage.Driver != DriverSQLite && cfg.Storage.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported storage driver '%s'", cfg.Storage.Driver)
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
