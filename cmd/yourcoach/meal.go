package yourcoach

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review meals",
}

var (
	mealName  string
	mealDate  string
	mealTime  string
	mealNotes string
	mealItems []string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal with one or more items",
	Long: `Log a meal. Each --item takes a JSON object with nutrient fields, e.g.
  --item '{"name":"chicken","calories":330,"protein_g":62,"amino_acid_score":1.0}'
Vitamins and minerals go in nested maps:
  --item '{"name":"spinach","vitamins":{"c":28},"minerals":{"iron":2.7}}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loggedAt, err := parseDateTimeOrNow(mealDate, mealTime)
		if err != nil {
			return err
		}
		items := make([]service.MealItemInput, 0, len(mealItems))
		for _, raw := range mealItems {
			var decoded model.MealItem
			if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
				return fmt.Errorf("invalid --item %q: %w", raw, err)
			}
			items = append(items, service.MealItemInput{
				Name:                decoded.Name,
				Calories:            decoded.Calories,
				ProteinG:            decoded.ProteinG,
				FatG:                decoded.FatG,
				CarbsG:              decoded.CarbsG,
				FiberG:              decoded.FiberG,
				SolubleFiberG:       decoded.SolubleFiberG,
				InsolubleFiberG:     decoded.InsolubleFiberG,
				SugarG:              decoded.SugarG,
				SaturatedFatG:       decoded.SaturatedFatG,
				MonounsaturatedFatG: decoded.MonounsaturatedFatG,
				PolyunsaturatedFatG: decoded.PolyunsaturatedFatG,
				GlycemicIndex:       decoded.GlycemicIndex,
				AminoAcidScore:      decoded.AminoAcidScore,
				Vitamins:            decoded.Vitamins,
				Minerals:            decoded.Minerals,
			})
		}
		in := service.AddMealInput{Name: mealName, LoggedAt: loggedAt, Notes: mealNotes, Items: items}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddMeal(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged meal %d (%s, %d items)\n", id, in.Name, len(items))
			return nil
		})
	},
}

var mealListDate string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			meals, err := service.ListMeals(sqldb, mealListDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tKCAL\tITEMS")
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%d\n", m.ID, m.LoggedAt.Format("15:04"), m.Name, m.Calories, len(m.Items))
			}
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal and its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("meal id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteMeal(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name (e.g. breakfast)")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	mealAddCmd.Flags().StringVar(&mealTime, "time", "", "Time HH:MM")
	mealAddCmd.Flags().StringVar(&mealNotes, "notes", "", "Optional notes")
	mealAddCmd.Flags().StringArrayVar(&mealItems, "item", nil, "Item as a JSON object (repeatable)")
	_ = mealAddCmd.MarkFlagRequired("name")
	_ = mealAddCmd.MarkFlagRequired("item")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
