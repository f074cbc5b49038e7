package yourcoach

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "yourcoach",
	Short: "yourcoach scores your daily food, exercise, and condition logs",
	Long:  "yourcoach is a local-first daily coaching CLI: log meals, workouts, and condition, then get banded scores, nutrition analysis, and streak tracking.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
