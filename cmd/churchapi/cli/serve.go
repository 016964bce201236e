package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/livinghopeag/churchapi/internal/config"
	"github.com/livinghopeag/churchapi/internal/model"
	"github.com/livinghopeag/churchapi/internal/server"
	"github.com/livinghopeag/churchapi/internal/service"
	"github.com/livinghopeag/churchapi/internal/store"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the church API server",
		Long:  "Start the HTTP server that exposes the public site API and the admin API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8001, "HTTP listen port")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "HTTP listen host")

	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))

	return cmd
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateForServe(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	logger.Info("content store opened", "driver", cfg.Store.Driver)

	authSvc, err := service.NewAuthService(st, cfg.Auth.JWTSecret, cfg.TokenTTL(), logger)
	if err != nil {
		st.Close()
		return err
	}

	if err := bootstrapAdmin(context.Background(), st, cfg, logger); err != nil {
		st.Close()
		return err
	}

	srv := server.New(cfg, st, authSvc, logger)

	fmt.Printf("→ %s API\n", cfg.Church.Name)
	fmt.Printf("→ Listening on http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("→ OpenAPI:  http://%s:%d/openapi.json\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("→ Health:   http://%s:%d/healthz\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Println()

	return srv.ListenAndServe()
}

// bootstrapAdmin creates the first admin account from configured credentials
// when the store has none. With no admins and no bootstrap credentials the
// server still starts, but every admin login will fail until one is created
// with `churchapi admin create`.
func bootstrapAdmin(ctx context.Context, st *store.Store, cfg *config.Config, logger *slog.Logger) error {
	hasAdmin, err := st.HasAnyAdmin(ctx)
	if err != nil {
		return fmt.Errorf("check for admin accounts: %w", err)
	}
	if hasAdmin {
		return nil
	}

	if cfg.Auth.BootstrapUsername == "" || cfg.Auth.BootstrapPassword == "" {
		logger.Warn("no admin account found - run: churchapi admin create")
		return nil
	}

	hash, err := service.HashPassword(cfg.Auth.BootstrapPassword)
	if err != nil {
		return err
	}
	admin := &model.AdminUser{
		Username:     cfg.Auth.BootstrapUsername,
		Email:        cfg.Auth.BootstrapEmail,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := st.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	logger.Info("bootstrap admin created", "username", admin.Username)
	return nil
}
