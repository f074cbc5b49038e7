package yourcoach

import (
	"database/sql"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var restDate string

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Mark a day as a planned rest day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetRestDay(sqldb, restDate); err != nil {
				return err
			}
			day := restDate
			if day == "" {
				day = "today"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as a rest day\n", day)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(restCmd)
	restCmd.Flags().StringVar(&restDate, "date", "", "Date YYYY-MM-DD (default today)")
}
