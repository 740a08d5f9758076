package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported repository backends.
const (
	BackendPgx  = "pgx"
	BackendGorm = "gorm"
)

// Config holds application configuration.
type Config struct {
	DBDriver          string
	RepositoryBackend string
	DatabaseURL       string
	SQLitePath        string
	RunMigrations     bool
	Port              string
	IsProduction      bool
	LogLevel          string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule/limiter format, e.g. "5-M"
	PostHogAPIKey      string
	MaxReportMonths    int

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DB_DRIVER", DriverSQLite)
	viper.SetDefault("REPOSITORY_BACKEND", BackendPgx)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "property_management.db")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "property-management-app")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("MAX_REPORT_MONTHS", 240)
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DBDriver = strings.ToLower(viper.GetString("DB_DRIVER"))
	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q, expected postgres or sqlite", cfg.DBDriver)
	}

	cfg.RepositoryBackend = strings.ToLower(viper.GetString("REPOSITORY_BACKEND"))
	switch cfg.RepositoryBackend {
	case BackendPgx, BackendGorm:
	default:
		return nil, fmt.Errorf("unsupported REPOSITORY_BACKEND %q, expected pgx or gorm", cfg.RepositoryBackend)
	}
	if cfg.DBDriver == DriverSQLite && cfg.RepositoryBackend != BackendGorm {
		// pgx only speaks Postgres
		cfg.RepositoryBackend = BackendGorm
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DBDriver == DriverPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL must be set when DB_DRIVER is postgres")
	}
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "24h"
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.MaxReportMonths = viper.GetInt("MAX_REPORT_MONTHS")
	if cfg.MaxReportMonths <= 0 {
		cfg.MaxReportMonths = 240
		log.Printf("Warning: MAX_REPORT_MONTHS must be positive. Defaulting to %d.\n", cfg.MaxReportMonths)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth is not fully configured and will not function.")
	}

	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// GoogleOAuthEnabled reports whether every Google OAuth setting is present.
func (c *Config) GoogleOAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}
