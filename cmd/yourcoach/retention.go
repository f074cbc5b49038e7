package yourcoach

import (
	"database/sql"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var retentionCmd = &cobra.Command{
	Use:   "retention",
	Short: "Show retention milestones since registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			stats, registeredAt, err := service.RetentionReport(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered: %s\n", registeredAt)
			fmt.Fprintf(cmd.OutOrStdout(), "Day 1: %s\n", yesNo(stats.Day1Retained))
			fmt.Fprintf(cmd.OutOrStdout(), "Day 7: %s\n", yesNo(stats.Day7Retained))
			fmt.Fprintf(cmd.OutOrStdout(), "Day 30: %s\n", yesNo(stats.Day30Retained))
			return nil
		})
	},
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(retentionCmd)
}
