package yourcoach

import (
	"database/sql"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/score"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var scoreDate string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute and show the daily score",
	RunE: func(cmd *cobra.Command, args []string) error {
		calc := score.NewCalculator(score.DefaultConfig())
		return withDB(func(sqldb *sql.DB) error {
			rec, err := service.ComputeDailyScore(sqldb, calc, scoreDate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			food := rec.Breakdown.Food
			fmt.Fprintf(out, "Day: %s\n", rec.Day)
			fmt.Fprintf(out, "Food: %d\n", rec.Food)
			fmt.Fprintf(out, "  calories %.0f  protein %.0f  fat %.0f  carbs %.0f\n", food.Calorie, food.Protein, food.Fat, food.Carb)
			fmt.Fprintf(out, "  amino %.0f  fatty %.0f  GL %.0f  fiber %.0f  vitamins %.0f  minerals %.0f\n",
				food.AminoAcid, food.FattyAcid, food.GlycemicLoad, food.Fiber, food.Vitamin, food.Mineral)
			fmt.Fprintf(out, "Exercise: %d\n", rec.Exercise)
			fmt.Fprintf(out, "Condition: %d\n", rec.Condition)
			fmt.Fprintf(out, "Total: %d\n", rec.Total)
			return nil
		})
	},
}

var (
	scoreHistoryFrom string
	scoreHistoryTo   string
)

var scoreHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored daily scores in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			records, err := service.ScoreHistory(sqldb, scoreHistoryFrom, scoreHistoryTo)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tFOOD\tEXERCISE\tCONDITION\tTOTAL")
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%d\t%d\n", r.Day, r.Food, r.Exercise, r.Condition, r.Total)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.AddCommand(scoreHistoryCmd)

	scoreCmd.Flags().StringVar(&scoreDate, "date", "", "Date YYYY-MM-DD (default today)")
	scoreHistoryCmd.Flags().StringVar(&scoreHistoryFrom, "from", "", "Start date YYYY-MM-DD (default today)")
	scoreHistoryCmd.Flags().StringVar(&scoreHistoryTo, "to", "", "End date YYYY-MM-DD (default today)")
}
