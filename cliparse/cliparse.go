package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	EnvProduction = "production"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"5000"`
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"qna.db"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	JWTSecret    string `env:"JWT_SECRET"`

	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	StaticDir string `env:"STATIC_DIR" envDefault:"qna_frontend/build"`

	// Optional default admin account, created at startup if the email is unused
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Production reports whether the bundled frontend should be served
func (c Config) Production() bool {
	return c.AppEnv == EnvProduction
}

// ParseFlags loads .env, then environment variables, then CLI flags (highest priority)
func ParseFlags(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("quickly-ask", flag.ContinueOnError)

	// Environment values become the flag defaults so only explicit flags override them
	flags.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (file path for sqlite)")
	flags.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	flags.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Token signing secret (prefer env)")
	flags.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "Frontend build directory")
	production := flags.Bool("production", cfg.Production(), "Serve the bundled frontend")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if *production {
		cfg.AppEnv = EnvProduction
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secret - MUST be provided
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return Config{}, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	return cfg, nil
}
