package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Store  StoreConfig
	JWT    JWTConfig
	App    AppConfig
	Admin  AdminConfig
	Backup BackupConfig
	Update UpdateConfig
}

// StoreConfig selects and configures the record store backend.
type StoreConfig struct {
	Driver    string // "mongo" or "excel"
	MongoURI  string
	MongoDB   string
	ExcelPath string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	Version     string
}

// AdminConfig holds the credentials of the admin user provisioned at startup.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type BackupConfig struct {
	Dir string
}

// UpdateConfig points to the GitHub repository checked for new releases.
type UpdateConfig struct {
	Repo string
}

func Load() (*Config, error) {
	// .env is optional; env vars may come from the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Version:     getEnv("APP_VERSION", "2.0.0"),
	}

	config.Store = StoreConfig{
		Driver:    getEnv("STORE_DRIVER", "mongo"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "business_dashboard"),
		ExcelPath: getEnv("EXCEL_PATH", "data/business_data.xlsx"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Admin = AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		Password: getEnv("ADMIN_PASSWORD", ""),
		Name:     getEnv("ADMIN_NAME", "Administrator"),
	}

	config.Backup = BackupConfig{
		Dir: getEnv("BACKUP_DIR", "backups"),
	}

	config.Update = UpdateConfig{
		Repo: getEnv("UPDATE_REPO", "AnkitB018/Business-Dashboard"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	switch c.Store.Driver {
	case "mongo":
		if c.Store.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo store driver")
		}
	case "excel":
		if c.Store.ExcelPath == "" {
			return fmt.Errorf("EXCEL_PATH is required for the excel store driver")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.Store.Driver)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
