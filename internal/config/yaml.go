package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/livinghopeag/churchapi/internal/model"
)

// Template returns a starter configuration with documented defaults,
// suitable for writing out as churchapi.yaml.
func Template() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8001,
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: "30s",
		},
		Store: StoreConfig{
			Driver:  "sqlite",
			DataDir: "~/.churchapi",
		},
		Auth: AuthConfig{
			JWTSecret:          "change-this-secret-key-in-production",
			TokenExpiryMinutes: 1440,
		},
		Log: LogConfig{Level: "info"},
		Church: model.ChurchInfo{
			Name:        "Living Hope AG",
			Address:     "123 Church Street, Muscat, Oman",
			Phone:       "+968 1234 5678",
			Email:       "contact@livinghopeag.com",
			Description: "A welcoming community of faith",
			ServiceTimes: map[string]string{
				"friday_service": "10:00 AM",
				"sunday_kids":    "3:00 PM",
				"all_night":      "Last Friday of each month",
			},
			SocialLinks: map[string]string{
				"facebook":  "",
				"instagram": "",
				"youtube":   "",
			},
		},
	}
}

// WriteTemplate marshals the starter configuration to YAML at path.
// Refuses to overwrite an existing file.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(Template())
	if err != nil {
		return fmt.Errorf("marshal config template: %w", err)
	}

	header := []byte("# churchapi configuration. Every key can also be set via\n# environment variables with the CHURCHAPI_ prefix, e.g.\n# CHURCHAPI_AUTH_JWT_SECRET overrides auth.jwt_secret.\n\n")
	if err := os.WriteFile(path, append(header, data...), 0600); err != nil {
		return fmt.Errorf("write config template: %w", err)
	}
	return nil
}
