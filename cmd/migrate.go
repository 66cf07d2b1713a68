package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hostaltucan/reservas-api/internal/infrastructure/db/mysql"
	"github.com/hostaltucan/reservas-api/internal/server"
	"github.com/hostaltucan/reservas-api/pkg/logger"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		log := logger.Get()
		if err := mysql.MigrateUp(server.MySQLConfig(cfg)); err != nil {
			return err
		}
		log.Info().Str("database", cfg.MySQL.Name).Msg("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		log := logger.Get()
		if err := mysql.MigrateDown(server.MySQLConfig(cfg)); err != nil {
			return err
		}
		log.Info().Str("database", cfg.MySQL.Name).Msg("migrations reverted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
