package yourcoach

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/api"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/score"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			addr := serveAddr
			if addr == "" {
				addr = api.ListenAddr()
			}
			srv := api.NewServer(sqldb, score.NewCalculator(score.DefaultConfig()))
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return http.ListenAndServe(addr, srv.Handler())
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Bind address (default: PORT env or :8080)")
}
