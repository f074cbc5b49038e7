package yourcoach

import (
	"database/sql"
	"fmt"
	"io"
	"sort"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/score"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var nutritionDate string

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Show the detailed nutrition analysis for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		calc := score.NewCalculator(score.DefaultConfig())
		return withDB(func(sqldb *sql.DB) error {
			detail, err := service.DetailedNutritionFor(sqldb, calc, nutritionDate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Protein: %.1fg (target %.1fg)\n", detail.Totals.ProteinG, detail.ProteinTarget)
			fmt.Fprintf(out, "Amino acid avg: %.2f (%s)\n", detail.AminoAcidAvg, detail.AminoRating)
			fmt.Fprintf(out, "Fatty acids: %s (%d stars) sat %.1f%% / mono %.1f%% / poly %.1f%%\n",
				detail.FattyAcids.Rating, detail.FattyAcids.Stars,
				detail.FattyAcids.SaturatedPct, detail.FattyAcids.MonoPct, detail.FattyAcids.PolyPct)
			fmt.Fprintf(out, "Glycemic load: %.1f raw, %.1f adjusted (limit %.0f)\n",
				detail.GlycemicLoad.Total, detail.GlycemicLoad.Adjusted, detail.GlycemicLoad.DailyLimit)
			for _, factor := range detail.GlycemicLoad.Factors {
				fmt.Fprintf(out, "  - %s (x%.2f)\n", factor.Name, factor.Factor)
			}
			fmt.Fprintf(out, "Fiber: %.1fg (target %.1fg, %s)\n", detail.Fiber.TotalG, detail.Fiber.TargetG, detail.Fiber.Rating)
			fmt.Fprintf(out, "Sodium: %.0fmg (recommended %.0fmg, limit %.0fmg)\n",
				detail.Micronutrient.SodiumMg, detail.Micronutrient.SodiumTarget, detail.Micronutrient.SodiumLimit)
			printRatios(out, "Vitamins", detail.Micronutrient.VitaminRatios)
			printRatios(out, "Minerals", detail.Micronutrient.MineralRatios)
			return nil
		})
	},
}

func printRatios(out io.Writer, label string, ratios map[string]float64) {
	names := make([]string, 0, len(ratios))
	for name := range ratios {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(out, "%s:\n", label)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.0f%%\n", name, ratios[name]*100)
	}
}

func init() {
	rootCmd.AddCommand(nutritionCmd)
	nutritionCmd.Flags().StringVar(&nutritionDate, "date", "", "Date YYYY-MM-DD (default today)")
}
