package yourcoach

import (
	"database/sql"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var conditionCmd = &cobra.Command{
	Use:   "condition",
	Short: "Log the daily condition ratings",
}

var (
	conditionDate    string
	conditionSleep   int
	conditionQuality int
	conditionDigest  int
	conditionFocus   int
	conditionStress  int
)

var conditionSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the five condition ratings (1-5) for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetConditionInput{
			Date:         conditionDate,
			SleepHours:   conditionSleep,
			SleepQuality: conditionQuality,
			Digestion:    conditionDigest,
			Focus:        conditionFocus,
			Stress:       conditionStress,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetCondition(sqldb, in); err != nil {
				return err
			}
			day := in.Date
			if day == "" {
				day = "today"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged condition for %s\n", day)
			return nil
		})
	},
}

var conditionShowDate string

var conditionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the condition ratings for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			c, err := service.ConditionFor(sqldb, conditionShowDate)
			if err != nil {
				return err
			}
			if c == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No condition logged")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep hours: %d/5\nSleep quality: %d/5\nDigestion: %d/5\nFocus: %d/5\nStress: %d/5\n",
				c.SleepHours, c.SleepQuality, c.Digestion, c.Focus, c.Stress)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(conditionCmd)
	conditionCmd.AddCommand(conditionSetCmd, conditionShowCmd)

	conditionSetCmd.Flags().StringVar(&conditionDate, "date", "", "Date YYYY-MM-DD (default today)")
	conditionSetCmd.Flags().IntVar(&conditionSleep, "sleep-hours", 0, "Sleep amount rating 1-5")
	conditionSetCmd.Flags().IntVar(&conditionQuality, "sleep-quality", 0, "Sleep quality rating 1-5")
	conditionSetCmd.Flags().IntVar(&conditionDigest, "digestion", 0, "Digestion rating 1-5")
	conditionSetCmd.Flags().IntVar(&conditionFocus, "focus", 0, "Focus rating 1-5")
	conditionSetCmd.Flags().IntVar(&conditionStress, "stress", 0, "Stress rating 1-5 (5 = relaxed)")
	_ = conditionSetCmd.MarkFlagRequired("sleep-hours")
	_ = conditionSetCmd.MarkFlagRequired("sleep-quality")
	_ = conditionSetCmd.MarkFlagRequired("digestion")
	_ = conditionSetCmd.MarkFlagRequired("focus")
	_ = conditionSetCmd.MarkFlagRequired("stress")

	conditionShowCmd.Flags().StringVar(&conditionShowDate, "date", "", "Date YYYY-MM-DD (default today)")
}
