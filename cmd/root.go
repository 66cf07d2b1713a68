package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hostaltucan/reservas-api/internal/infrastructure/config"
	"github.com/hostaltucan/reservas-api/pkg/logger"
)

const serviceName = "reservas-api"

// rootCmd represents the base command when called without any subcommands.
// It runs the HTTP server.
var rootCmd = &cobra.Command{
	Use:           "reservas-api",
	Short:         "Reservation management backend for Hostal Tucán",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap loads configuration and initialises the process logger, which
// commands then retrieve with logger.Get.
func bootstrap(ctx context.Context) (config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return config.Config{}, err
	}
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})
	return cfg, nil
}
