package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		PublicURL   string `yaml:"public_url" env:"SERVER_PUBLIC_URL"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Redis struct {
		Enabled    bool   `yaml:"enabled" env:"REDIS_ENABLED"`
		Addr       string `yaml:"addr" env:"REDIS_ADDR"`
		Password   string `yaml:"password" env:"REDIS_PASSWORD"`
		DB         int    `yaml:"db" env:"REDIS_DB"`
		ListingTTL string `yaml:"listing_ttl" env:"REDIS_LISTING_TTL"`
	} `yaml:"redis"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	GenAI struct {
		APIKey      string  `yaml:"api_key" env:"GENAI_API_KEY"`
		Endpoint    string  `yaml:"endpoint" env:"GENAI_ENDPOINT"`
		Model       string  `yaml:"model" env:"GENAI_MODEL"`
		MaxTokens   int     `yaml:"max_tokens" env:"GENAI_MAX_TOKENS"`
		Temperature float64 `yaml:"temperature" env:"GENAI_TEMPERATURE"`
		TopP        float64 `yaml:"top_p" env:"GENAI_TOP_P"`
		TopK        int     `yaml:"top_k" env:"GENAI_TOP_K"`
	} `yaml:"genai"`

	Payment struct {
		PayeeID      string  `yaml:"payee_id" env:"PAYMENT_PAYEE_ID"`
		MerchantName string  `yaml:"merchant_name" env:"PAYMENT_MERCHANT_NAME"`
		Currency     string  `yaml:"currency" env:"PAYMENT_CURRENCY"`
		AmountRupees int     `yaml:"amount_rupees" env:"PAYMENT_AMOUNT_RUPEES"`
		VerifyDelay  string  `yaml:"verify_delay" env:"PAYMENT_VERIFY_DELAY"`
		SuccessRate  float64 `yaml:"success_rate" env:"PAYMENT_SUCCESS_RATE"`
	} `yaml:"payment"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone can carry a deployment
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coachhub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Redis.Addr = "localhost:6379"
	config.Redis.ListingTTL = "30s"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.RefreshTokenExpiration = "720h"
	config.JWT.Issuer = "coachhub.app"

	config.GenAI.Endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	config.GenAI.Model = "gemini-1.5-flash"
	config.GenAI.MaxTokens = 1024
	config.GenAI.Temperature = 0.7
	config.GenAI.TopP = 0.95
	config.GenAI.TopK = 40

	config.Payment.Currency = "INR"
	config.Payment.AmountRupees = 500
	config.Payment.VerifyDelay = "3s"
	config.Payment.SuccessRate = 0.8

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid. Every missing
// required setting is collected so startup fails once with the full list
// instead of dying one variable at a time.
func validateConfig(config *Config) error {
	var missing []string

	if config.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if config.GenAI.APIKey == "" {
		missing = append(missing, "GENAI_API_KEY")
	}
	if config.Payment.PayeeID == "" {
		missing = append(missing, "PAYMENT_PAYEE_ID")
	}
	if config.Payment.MerchantName == "" {
		missing = append(missing, "PAYMENT_MERCHANT_NAME")
	}
	if config.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if config.Database.DBName == "" {
		missing = append(missing, "DB_NAME")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}
	if _, err := time.ParseDuration(config.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT refresh token expiration format: %w", err)
	}
	if _, err := time.ParseDuration(config.Payment.VerifyDelay); err != nil {
		return fmt.Errorf("invalid payment verify delay format: %w", err)
	}
	if _, err := time.ParseDuration(config.Redis.ListingTTL); err != nil {
		return fmt.Errorf("invalid redis listing TTL format: %w", err)
	}
	if config.Payment.SuccessRate < 0 || config.Payment.SuccessRate > 1 {
		return fmt.Errorf("payment success rate must be within [0, 1]")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
