package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostaltucan/reservas-api/internal/core/ports"
	"github.com/hostaltucan/reservas-api/internal/core/service"
	"github.com/hostaltucan/reservas-api/internal/infrastructure/db/mysql"
	"github.com/hostaltucan/reservas-api/internal/server"
	"github.com/hostaltucan/reservas-api/pkg/logger"
)

const adminPasswordEnv = "ADMIN_PASSWORD"

var createAdminOpts struct {
	name     string
	email    string
	password string
}

// createAdminCmd seeds the first administrator account.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Long: `Creates a user holding the Administrador role. The password is taken from
--password, then the ADMIN_PASSWORD environment variable, and finally read
from standard input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		log := logger.Get()

		password, err := resolvePassword(createAdminOpts.password, os.Getenv(adminPasswordEnv), cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		db, err := mysql.Connect(ctx, server.MySQLConfig(cfg))
		if err != nil {
			return err
		}
		defer db.Close()

		users := service.NewUserService(mysql.NewUserRepository(db), cfg.Auth.BcryptCost, log)
		admin, err := users.CreateAdmin(ctx, ports.CreateAdminInput{
			Name:     createAdminOpts.name,
			Email:    createAdminOpts.email,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "administrator %s created with id %d\n", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&createAdminOpts.name, "name", "Administrador", "display name of the administrator")
	createAdminCmd.Flags().StringVar(&createAdminOpts.email, "email", "admin@hostaltucan.com", "login email of the administrator")
	createAdminCmd.Flags().StringVar(&createAdminOpts.password, "password", "", "password (falls back to "+adminPasswordEnv+", then stdin)")
}

// resolvePassword picks the first non-empty source and prompts on in as a
// last resort.
func resolvePassword(flag, env string, in io.Reader, out io.Writer) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env != "" {
		return env, nil
	}

	fmt.Fprint(out, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
