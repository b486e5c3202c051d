package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/core/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// bootstrapOptions describes the bank opened by the bootstrap command.
type bootstrapOptions struct {
	bankName      string
	adminName     string
	adminUsername string
}

func bootstrapCommand(a *app) *cobra.Command {
	opts := bootstrapOptions{}

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Open a bank with its first admin employee",
		Long: "Opens a bank together with its first admin employee and the base currency.\n" +
			"The admin password is read from the terminal without echo.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.StorageDriver == config.StorageMemory {
				return errors.New("bootstrap needs persistent storage, STORAGE_DRIVER is memory")
			}
			password, err := promptPassword("Admin password: ")
			if err != nil {
				return err
			}
			return runBootstrap(cmd, a, opts, password)
		},
	}

	cmd.Flags().StringVar(&opts.bankName, "bank", "", "Name of the bank")
	cmd.Flags().StringVar(&opts.adminName, "admin-name", "", "Display name of the admin employee")
	cmd.Flags().StringVar(&opts.adminUsername, "admin-username", "", "Login username of the admin employee")
	for _, flag := range []string{"bank", "admin-name", "admin-username"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

// promptPassword reads a password twice from the terminal with echo disabled.
func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("bootstrap must be run from an interactive terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if strings.TrimSpace(string(first)) == "" {
		return "", errors.New("password must not be empty")
	}
	return string(first), nil
}

func runBootstrap(cmd *cobra.Command, a *app, opts bootstrapOptions, password string) error {
	ctx := cmd.Context()

	repos, closeRepos, err := openRepositories(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeRepos()

	serviceContainer, err := services.NewServiceContainer(a.cfg, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	bank, admin, err := serviceContainer.Bank.CreateBank(ctx, dto.CreateBankRequest{
		Name: opts.bankName,
		Admin: dto.CreateEmployeeRequest{
			Name:         opts.adminName,
			Username:     opts.adminUsername,
			Password:     password,
			EmployeeType: domain.Admin,
		},
	})
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Bank creation failed:", err)
		return err
	}

	out := cmd.OutOrStdout()
	color.New(color.FgGreen, color.Bold).Fprintln(out, "Bank opened")
	fmt.Fprintf(out, "  %s %s\n", color.CyanString("bank id: "), bank.BankID)
	fmt.Fprintf(out, "  %s %s\n", color.CyanString("name:    "), bank.Name)
	fmt.Fprintf(out, "  %s %s\n", color.CyanString("admin id:"), admin.EmployeeID)
	color.New(color.FgYellow).Fprintln(out, "Log in at POST /api/v1/auth/employees/login with the bank id and admin id.")
	return nil
}
