package cli

import (
	"fmt"

	"github.com/ehrlich-b/twisted/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the solver HTTP API",
	Long:  `Start an HTTP server exposing the 2x2x2 and 3x3x3 solvers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")

		fmt.Println("Initializing tables...")
		server := web.NewServer()
		fmt.Println("Done")

		return server.Start(fmt.Sprintf(":%d", port))
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
}
