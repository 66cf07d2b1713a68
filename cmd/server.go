package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hostaltucan/reservas-api/internal/server"
	"github.com/hostaltucan/reservas-api/pkg/logger"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the reservations HTTP server",
	Long: `Starts the reservations HTTP server. Usage:

	reservas-api server
`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	log := logger.Get()

	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to start server")
		return err
	}
	return srv.Run(ctx)
}
