package yourcoach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the activity streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.CurrentStreakStatus(sqldb, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d days\n", status.CurrentStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Longest streak: %d days\n", status.LongestStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Freeze credits: %d\n", status.FreezeCredits)
			if status.FreezeUsable {
				fmt.Fprintln(cmd.OutOrStdout(), "A freeze can rescue your streak: run 'streak freeze'")
			}
			return nil
		})
	},
}

var streakFreezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Spend a freeze credit to bridge a missed day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.UseFreeze(sqldb, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Streak frozen. Current streak: %d days (%d credits left)\n",
				status.CurrentStreak, status.FreezeCredits)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
	streakCmd.AddCommand(streakFreezeCmd)
}
