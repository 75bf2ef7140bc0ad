package cli

import (
	"fmt"

	"mealplans/internal/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long:  `Open the configured store, which applies its schema migrations, and exit.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		_, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		if err := closeStore(); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s store is up to date\n", cfg.Store)
		return nil
	},
}
