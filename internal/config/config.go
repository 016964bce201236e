// Package config collapses viper-sourced settings (flags, environment,
// optional churchapi.yaml) into one explicit struct built at startup and
// passed down. Nothing reads the environment after Load returns.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/livinghopeag/churchapi/internal/model"
)

// Config is the complete process configuration.
type Config struct {
	Server ServerConfig     `yaml:"server" mapstructure:"server"`
	Store  StoreConfig      `yaml:"store" mapstructure:"store"`
	Auth   AuthConfig       `yaml:"auth" mapstructure:"auth"`
	Church model.ChurchInfo `yaml:"church" mapstructure:"church"`
	Log    LogConfig        `yaml:"log" mapstructure:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string   `yaml:"host" mapstructure:"host"`
	Port            int      `yaml:"port" mapstructure:"port"`
	CORSOrigins     []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	ShutdownTimeout string   `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// StoreConfig selects and locates the content database.
type StoreConfig struct {
	Driver  string `yaml:"driver" mapstructure:"driver"`   // "sqlite" or "postgres"
	DSN     string `yaml:"dsn" mapstructure:"dsn"`         // postgres only
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"` // sqlite only
}

// AuthConfig holds the token signing secret and lifetime, plus optional
// bootstrap credentials used to create the first admin account when the
// store has none.
type AuthConfig struct {
	JWTSecret          string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	TokenExpiryMinutes int    `yaml:"token_expiry_minutes" mapstructure:"token_expiry_minutes"`
	BootstrapUsername  string `yaml:"bootstrap_username" mapstructure:"bootstrap_username"`
	BootstrapEmail     string `yaml:"bootstrap_email" mapstructure:"bootstrap_email"`
	BootstrapPassword  string `yaml:"bootstrap_password" mapstructure:"bootstrap_password"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error
}

// SetDefaults registers every configuration default on v. Call before Load.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.data_dir", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_expiry_minutes", 1440)

	v.SetDefault("log.level", "info")

	v.SetDefault("church.name", "Living Hope AG")
	v.SetDefault("church.address", "123 Church Street, Muscat, Oman")
	v.SetDefault("church.phone", "+968 1234 5678")
	v.SetDefault("church.email", "contact@livinghopeag.com")
	v.SetDefault("church.description", "A welcoming community of faith")
	v.SetDefault("church.service_times", map[string]string{
		"friday_service": "10:00 AM",
		"sunday_kids":    "3:00 PM",
		"all_night":      "Last Friday of each month",
	})
	v.SetDefault("church.social_links", map[string]string{
		"facebook":  "",
		"instagram": "",
		"youtube":   "",
	})
}

// Load unmarshals the merged viper state into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ValidateForServe checks the settings the server cannot run without.
// A missing signing secret is a fatal configuration error at process start,
// never a per-request error.
func (c *Config) ValidateForServe() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required (set CHURCHAPI_AUTH_JWT_SECRET or auth.jwt_secret in churchapi.yaml)")
	}
	if c.Store.Driver == "postgres" && c.Store.DSN == "" {
		return errors.New("store.dsn is required when store.driver is postgres")
	}
	return nil
}

// TokenTTL returns the configured token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenExpiryMinutes) * time.Minute
}

// ShutdownTimeout parses the configured graceful-shutdown window, falling
// back to 30 seconds on a malformed value.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
