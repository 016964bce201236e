package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/livinghopeag/churchapi/internal/config"
	"github.com/livinghopeag/churchapi/internal/store"
)

// loadConfig merges defaults, the config file, environment variables, and
// flags into one Config.
func loadConfig() (*config.Config, error) {
	v := viper.GetViper()
	config.SetDefaults(v)
	return config.Load(v)
}

// resolveDataDir returns the data directory from the --data-dir flag, the
// config, or ~/.churchapi as fallback.
func resolveDataDir(cfg *config.Config) string {
	if dataDir != "" {
		return dataDir
	}
	if cfg.Store.DataDir != "" {
		return cfg.Store.DataDir
	}
	home, _ := os.UserHomeDir()
	return home + "/.churchapi"
}

// openStore opens the content database selected by cfg.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.Store.Driver == "postgres" {
		return store.Open("postgres", cfg.Store.DSN)
	}
	dsn, err := store.SQLitePath(resolveDataDir(cfg))
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	return store.Open("sqlite", dsn)
}

// newLogger builds the process logger at the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
