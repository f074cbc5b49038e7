package yourcoach

import (
	"database/sql"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage daily calorie and macro targets",
}

var (
	targetCalories int
	targetProtein  float64
	targetFat      float64
	targetCarbs    float64
	targetDate     string
)

var targetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily targets with an effective date",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetTargetInput{
			Calories:      targetCalories,
			ProteinG:      targetProtein,
			FatG:          targetFat,
			CarbsG:        targetCarbs,
			EffectiveDate: targetDate,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetTarget(sqldb, in); err != nil {
				return err
			}
			if in.EffectiveDate == "" {
				in.EffectiveDate = "today"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set target effective %s\n", in.EffectiveDate)
			return nil
		})
	},
}

var currentTargetDate string

var targetCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			target, err := service.CurrentTarget(sqldb, currentTargetDate)
			if err != nil {
				return err
			}
			if target == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No target configured")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Effective: %s\nCalories: %d\nProtein: %.1fg\nFat: %.1fg\nCarbs: %.1fg\n",
				target.EffectiveDate, target.Calories, target.ProteinG, target.FatG, target.CarbsG)
			return nil
		})
	},
}

var targetHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show target history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			targets, err := service.TargetHistory(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tKCAL\tP\tF\tC")
			for _, t := range targets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.1f\t%.1f\t%.1f\n", t.EffectiveDate, t.Calories, t.ProteinG, t.FatG, t.CarbsG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.AddCommand(targetSetCmd, targetCurrentCmd, targetHistoryCmd)

	targetSetCmd.Flags().IntVar(&targetCalories, "calories", 0, "Daily calorie target")
	targetSetCmd.Flags().Float64Var(&targetProtein, "protein", 0, "Daily protein target grams")
	targetSetCmd.Flags().Float64Var(&targetFat, "fat", 0, "Daily fat target grams")
	targetSetCmd.Flags().Float64Var(&targetCarbs, "carbs", 0, "Daily carbs target grams")
	targetSetCmd.Flags().StringVar(&targetDate, "effective-date", "", "Effective date YYYY-MM-DD (default today)")
	_ = targetSetCmd.MarkFlagRequired("calories")
	_ = targetSetCmd.MarkFlagRequired("protein")
	_ = targetSetCmd.MarkFlagRequired("fat")
	_ = targetSetCmd.MarkFlagRequired("carbs")

	targetCurrentCmd.Flags().StringVar(&currentTargetDate, "date", "", "Resolve target at date YYYY-MM-DD (default today)")
}
