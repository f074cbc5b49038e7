package yourcoach

import (
	"database/sql"
	"fmt"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the scoring profile (style, lean mass, goal)",
}

var (
	profileStyle    string
	profileLeanMass float64
	profileMeals    int
	profileGoal     string
	profileDate     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the profile with an effective date",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetProfileInput{
			Style:          profileStyle,
			LeanBodyMassKg: profileLeanMass,
			MealsPerDay:    profileMeals,
			Goal:           profileGoal,
			EffectiveDate:  profileDate,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetProfile(sqldb, in); err != nil {
				return err
			}
			if in.EffectiveDate == "" {
				in.EffectiveDate = "today"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set profile effective %s\n", in.EffectiveDate)
			return nil
		})
	},
}

var currentProfileDate string

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.CurrentProfile(sqldb, currentProfileDate)
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile configured")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Effective: %s\nStyle: %s\nLean body mass: %.1fkg\nMeals per day: %d\nGoal: %s\n",
				profile.EffectiveDate, profile.Style, profile.LeanBodyMassKg, profile.MealsPerDay, profile.Goal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileStyle, "style", "", "Scoring style: general or bodymaker")
	profileSetCmd.Flags().Float64Var(&profileLeanMass, "lean-mass", 0, "Lean body mass in kg")
	profileSetCmd.Flags().IntVar(&profileMeals, "meals-per-day", 3, "Planned meals per day")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "maintain", "Goal: maintain, cut, or bulk")
	profileSetCmd.Flags().StringVar(&profileDate, "effective-date", "", "Effective date YYYY-MM-DD (default today)")
	_ = profileSetCmd.MarkFlagRequired("style")
	_ = profileSetCmd.MarkFlagRequired("lean-mass")

	profileShowCmd.Flags().StringVar(&currentProfileDate, "date", "", "Resolve profile at date YYYY-MM-DD (default today)")
}
