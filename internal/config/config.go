package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string
	LogMode string `mapstructure:"log_mode"`

	MongoURI string `mapstructure:"mongo_uri"` // Optional; default catalog source
	MongoDB  string `mapstructure:"mongo_db"`

	RedisURI   string        `mapstructure:"redis_uri"` // Optional; sessions stay in memory without it
	SessionTTL time.Duration `mapstructure:"session_ttl"`

	JWTSecret string `mapstructure:"jwt_secret"`

	ExportOrder      string `mapstructure:"export_order"`
	ExportTimeLayout string `mapstructure:"export_time_layout"`
	ExportTimezone   string `mapstructure:"export_timezone"`

	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	CORSAllowedMethods string `mapstructure:"cors_allowed_methods"`
	CORSAllowedHeaders string `mapstructure:"cors_allowed_headers"`
}

var keys = []string{
	"port", "log_mode", "mongo_uri", "mongo_db", "redis_uri", "session_ttl", "jwt_secret",
	"export_order", "export_time_layout", "export_timezone",
	"cors_allowed_origins", "cors_allowed_methods", "cors_allowed_headers",
}

// Load reads config.yaml (from ./config or .) when present, then applies
// environment overrides such as PORT or REDIS_URI.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("port", "8080")
	v.SetDefault("log_mode", "development")
	v.SetDefault("mongo_db", "videosurvey")
	v.SetDefault("session_ttl", 24*time.Hour)
	v.SetDefault("jwt_secret", "change-me-in-production")
	v.SetDefault("export_order", "completion")
	v.SetDefault("export_time_layout", "2006/1/2 15:04:05")
	v.SetDefault("export_timezone", "Local")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("cors_allowed_methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	v.SetDefault("cors_allowed_headers", "Content-Type, Authorization")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	// Accept redis://host:port as well as host:port
	cfg.RedisURI = strings.TrimPrefix(cfg.RedisURI, "redis://")
	return &cfg, nil
}

// Location resolves ExportTimezone
func (c *Config) Location() (*time.Location, error) {
	if c.ExportTimezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.ExportTimezone)
}
