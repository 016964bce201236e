package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample content into an empty database",
		Long:  "Insert sample sermons, events, and announcements so a fresh install has content to render. Tables that already have rows are left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
	return cmd
}

func runSeed() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer st.Close()

	n, err := st.Seed(context.Background())
	if err != nil {
		return fmt.Errorf("seed content: %w", err)
	}

	if n == 0 {
		fmt.Println("Database already has content, nothing to seed.")
	} else {
		fmt.Printf("Inserted %d sample records.\n", n)
	}
	return nil
}
