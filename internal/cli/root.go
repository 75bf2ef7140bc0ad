// Package cli wires configuration, storage and the HTTP server behind the
// mealplans command line.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd is the root command for mealplans.
var rootCmd = &cobra.Command{
	Use:     "mealplans",
	Version: "dev",
	Short:   "Daily meal plan service",
	Long: `mealplans stores breakfast, lunch and dinner plans per calendar date
and serves them over a JSON HTTP API.

Configuration comes from the environment and an optional .env file:
ADDR, STORE (postgres|sqlite|memory), DATABASE_URL, SQLITE_PATH, DEMO_USER_ID.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, showCmd)
}
