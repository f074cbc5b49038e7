package yourcoach

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and review workouts",
}

var (
	workoutDate      string
	workoutTime      string
	workoutDuration  int
	workoutCalories  int
	workoutNotes     string
	workoutExercises []string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout with its exercises",
	Long: `Log a workout. Each --exercise takes category[:sets][:minutes], e.g.
  --exercise weight_training:12
  --exercise running::20
Categories: weight_training, bodyweight, running, cycling, swimming, walking, yoga, stretching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		performedAt, err := parseDateTimeOrNow(workoutDate, workoutTime)
		if err != nil {
			return err
		}
		exercises := make([]service.ExerciseInput, 0, len(workoutExercises))
		for _, raw := range workoutExercises {
			ex, err := parseExerciseSpec(raw)
			if err != nil {
				return err
			}
			exercises = append(exercises, ex)
		}
		in := service.AddWorkoutInput{
			PerformedAt:    performedAt,
			DurationMin:    workoutDuration,
			CaloriesBurned: workoutCalories,
			Notes:          workoutNotes,
			Exercises:      exercises,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddWorkout(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %d (%d min, %d exercises)\n", id, in.DurationMin, len(exercises))
			return nil
		})
	},
}

var workoutListDate string

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			workouts, err := service.ListWorkouts(sqldb, workoutListDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tMIN\tKCAL\tEXERCISES")
			for _, w := range workouts {
				parts := make([]string, 0, len(w.Records))
				for _, r := range w.Records {
					part := string(r.Category)
					if r.Sets != nil {
						part += fmt.Sprintf(" %d sets", *r.Sets)
					}
					if r.DurationMin != nil {
						part += fmt.Sprintf(" %d min", *r.DurationMin)
					}
					parts = append(parts, part)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%d\t%s\n", w.ID, w.PerformedAt.Format("15:04"), w.DurationMin, w.CaloriesBurned, strings.Join(parts, ", "))
			}
			return nil
		})
	},
}

// parseExerciseSpec decodes category[:sets][:minutes]; empty positions
// leave the value unset.
func parseExerciseSpec(raw string) (service.ExerciseInput, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 3)
	out := service.ExerciseInput{Category: parts[0]}
	if out.Category == "" {
		return service.ExerciseInput{}, fmt.Errorf("invalid --exercise %q: category is required", raw)
	}
	if len(parts) > 1 && parts[1] != "" {
		sets, err := strconv.Atoi(parts[1])
		if err != nil {
			return service.ExerciseInput{}, fmt.Errorf("invalid sets in --exercise %q", raw)
		}
		out.Sets = &sets
	}
	if len(parts) > 2 && parts[2] != "" {
		minutes, err := strconv.Atoi(parts[2])
		if err != nil {
			return service.ExerciseInput{}, fmt.Errorf("invalid minutes in --exercise %q", raw)
		}
		out.DurationMin = &minutes
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd)

	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutAddCmd.Flags().StringVar(&workoutTime, "time", "", "Time HH:MM")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Total workout minutes")
	workoutAddCmd.Flags().IntVar(&workoutCalories, "calories", 0, "Estimated calories burned")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "Optional notes")
	workoutAddCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "Exercise as category[:sets][:minutes] (repeatable)")
	_ = workoutAddCmd.MarkFlagRequired("exercise")

	workoutListCmd.Flags().StringVar(&workoutListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
