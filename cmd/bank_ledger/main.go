package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

// @title Bank Ledger API
// @version 1.0
// @description Multi-bank ledger with transfers, reversals and an employee audit trail.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// app carries what every command needs once the root pre-run has loaded it.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func preRun(a *app) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(a.logger)

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.cfg = cfg
		return nil
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "bank_ledger",
		Short:             "Multi-bank ledger and audit service",
		SilenceUsage:      true,
		PersistentPreRunE: preRun(a),
	}

	rootCmd.AddCommand(serveCommand(a))
	rootCmd.AddCommand(migrateCommand(a))
	rootCmd.AddCommand(bootstrapCommand(a))

	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
