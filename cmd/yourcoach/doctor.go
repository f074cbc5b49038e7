package yourcoach

import (
	"database/sql"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan meal items: %d\n", report.OrphanMealItems)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan workout exercises: %d\n", report.OrphanWorkoutExercises)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid nutrient rows: %d\n", report.InvalidNutrientJSON)
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed activity days: %d\n", report.MalformedActivityDays)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed nutrient rows: %d\n", report.FixedNutrientRows)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed activity days: %d\n", report.RemovedActivityDays)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if report.OrphanMealItems > 0 || report.OrphanWorkoutExercises > 0 || report.InvalidNutrientJSON > 0 || report.MalformedActivityDays > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
