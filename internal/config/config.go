package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting. Loaded once at startup from the
// environment (optionally a config file) and treated as immutable afterwards.
type Config struct {
	ServerPort  string        `mapstructure:"server_port"`
	DatabaseURL string        `mapstructure:"database_url"`
	RedisAddr   string        `mapstructure:"redis_addr"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	RefreshTTL  time.Duration `mapstructure:"refresh_ttl"`

	// Vision gateway (scan feature)
	VisionBaseURL string        `mapstructure:"vision_base_url"`
	VisionAPIKey  string        `mapstructure:"vision_api_key"`
	VisionModel   string        `mapstructure:"vision_model"`
	VisionTimeout time.Duration `mapstructure:"vision_timeout"`
	ScanCacheTTL  time.Duration `mapstructure:"scan_cache_ttl"`

	// Reminder worker
	ReminderInterval time.Duration `mapstructure:"reminder_interval"`
}

// Load reads configuration from environment variables (EXPIRY_ prefix) and,
// when present, a config.yaml in the working directory. Missing required
// values fail startup rather than limping along with defaults.
func Load() (*Config, error) {
	v := viper.New()

	// Empty defaults register the keys so AutomaticEnv can fill them in;
	// required ones are checked after unmarshalling.
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("vision_api_key", "")
	v.SetDefault("server_port", "8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("token_ttl", 15*time.Minute)
	v.SetDefault("refresh_ttl", 7*24*time.Hour)
	v.SetDefault("vision_base_url", "https://ai.gateway.lovable.dev/v1")
	v.SetDefault("vision_model", "google/gemini-2.5-flash")
	v.SetDefault("vision_timeout", 30*time.Second)
	v.SetDefault("scan_cache_ttl", 24*time.Hour)
	v.SetDefault("reminder_interval", time.Hour)

	v.SetEnvPrefix("EXPIRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "EXPIRY_DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "EXPIRY_JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	return &cfg, nil
}
