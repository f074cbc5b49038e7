package yourcoach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local database and record the registration date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.EnsureRegistered(sqldb, time.Now()); err != nil {
				return err
			}
			path, err := resolveDBPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized yourcoach database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
