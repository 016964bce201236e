package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/livinghopeag/churchapi/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Initialize a starter configuration file or display the current effective configuration.",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

// ---------- config init ----------

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter churchapi.yaml configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	}
	return cmd
}

func runConfigInit() error {
	path := "churchapi.yaml"
	if err := config.WriteTemplate(path); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	fmt.Println("Set auth.jwt_secret and the church profile, then run 'churchapi serve'.")
	return nil
}

// ---------- config show ----------

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
	return cmd
}

func runConfigShow() error {
	initConfig()

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		fmt.Printf("Config file: %s\n", configFile)
	} else {
		fmt.Println("Config file: (none found, using defaults)")
	}
	fmt.Println()

	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Println("No configuration settings loaded.")
		fmt.Println("Run 'churchapi config init' to create a starter configuration file.")
		return nil
	}

	for key, value := range settings {
		if key == "auth" {
			fmt.Printf("  %s: (hidden)\n", key)
			continue
		}
		fmt.Printf("  %s: %v\n", key, value)
	}

	return nil
}
