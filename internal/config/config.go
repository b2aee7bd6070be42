package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode string
	Port    string
	Admin   AdminConfig
	Session SessionConfig
	Cookie  CookieConfig
	Notify  NotifyConfig
}

// AdminConfig holds the admin gate credential.
//
// The gate is a single shared static secret with unlimited retries. It is
// a convenience wall in front of the staff panel, not a security
// boundary; there are no per-user accounts behind it. Do not treat it
// as real authentication.
type AdminConfig struct {
	Password     string // plain shared secret, compared directly
	PasswordHash string // optional bcrypt hash; takes precedence when set
}

// SessionConfig holds the admin session token configuration
type SessionConfig struct {
	Secret    string
	TokenMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// NotifyConfig holds transient-notification configuration
type NotifyConfig struct {
	TTL time.Duration
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	ttlSecs, _ := strconv.Atoi(getEnv("NOTIFY_TTL_SECONDS", "5"))
	if ttlSecs < 1 {
		ttlSecs = 5
	}

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Admin: AdminConfig{
			Password:     getEnv("ADMIN_PASSWORD", "10551055"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Session: loadSessionConfig(appMode),
		Cookie:  loadCookieConfig(appMode),
		Notify: NotifyConfig{
			TTL: time.Duration(ttlSecs) * time.Second,
		},
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadSessionConfig loads session token config based on mode
func loadSessionConfig(mode string) SessionConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	tokenMins, _ := strconv.Atoi(getEnv("SESSION_TOKEN_MINUTES", "480"))

	return SessionConfig{
		Secret:    getEnv(prefix+"SESSION_SECRET", "default_secret"),
		TokenMins: tokenMins,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origin
		return "https://refill.hbth.med.sa"
	}
	return origins
}
