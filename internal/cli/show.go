package cli

import (
	"encoding/json"
	"fmt"

	"mealplans/internal/app"
	"mealplans/internal/config"
	"mealplans/internal/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	showDate string
	showUser string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the meal plans for a date",
	Long:  `Print the plans stored for a date as JSON, in the same shape the HTTP API returns.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		date, err := domain.ParseDate(showDate)
		if err != nil {
			return err
		}
		userID := cfg.DemoUserID
		if showUser != "" {
			if userID, err = uuid.Parse(showUser); err != nil {
				return fmt.Errorf("--user: %w", err)
			}
		}

		store, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		plans, err := app.NewMealPlanService(store).GetPlansForDate(cmd.Context(), userID, date)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(plans, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showDate, "date", "", "plan date (YYYY-MM-DD)")
	showCmd.Flags().StringVar(&showUser, "user", "", "user id (defaults to DEMO_USER_ID)")
	_ = showCmd.MarkFlagRequired("date")
}
