package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Fetcher FetcherConfig
	Parser  ParserConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FetcherConfig holds document download settings.
type FetcherConfig struct {
	TimeoutSecs int `mapstructure:"timeout_secs"`
}

// ParserConfig holds LLM extraction settings.
type ParserConfig struct {
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the BILLSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Fetcher defaults
	v.SetDefault("fetcher.timeout_secs", 10)

	// Parser defaults
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gemini-2.5-flash-preview-09-2025")
	v.SetDefault("parser.max_retries", 3)
	v.SetDefault("parser.timeout_secs", 120)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "BILLSCAN_SERVER_PORT",
		"server.read_timeout":  "BILLSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout": "BILLSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":   "BILLSCAN_SERVER_ENVIRONMENT",
		"log.level":            "BILLSCAN_LOG_LEVEL",
		"log.format":           "BILLSCAN_LOG_FORMAT",
		"fetcher.timeout_secs": "BILLSCAN_FETCHER_TIMEOUT_SECS",
		"parser.api_key":       "BILLSCAN_PARSER_API_KEY",
		"parser.default_model": "BILLSCAN_PARSER_DEFAULT_MODEL",
		"parser.max_retries":   "BILLSCAN_PARSER_MAX_RETRIES",
		"parser.timeout_secs":  "BILLSCAN_PARSER_TIMEOUT_SECS",
		"cors.allowed_origins": "BILLSCAN_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLSCAN_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Fetcher = FetcherConfig{
		TimeoutSecs: v.GetInt("fetcher.timeout_secs"),
	}
	cfg.Parser = ParserConfig{
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		MaxRetries:   v.GetInt("parser.max_retries"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
