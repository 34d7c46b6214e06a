package main

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP tool server",
	Long: `Run the HTTP tool server on $PORT.

Routes:
  GET  /health
  GET  /tools
  POST /tools/:name

When REDIS_URI is set the scheduled post delivery worker runs alongside.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return appInst.Serve()
	},
}
