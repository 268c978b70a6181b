package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrledger/payroll-system/internal/console"
	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/service"
	"github.com/hrledger/payroll-system/internal/pkg/config"
	"github.com/hrledger/payroll-system/pkg/logger"
)

func newConsoleCmd(opts *rootOptions) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run the interactive menu on stdin and stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}

			// Logs go to stderr at warn so they stay out of the menu.
			log := logger.Init(logger.Options{
				Level:     logLevel,
				Pretty:    true,
				Output:    os.Stderr,
				Component: "console",
			})

			svc := service.NewCompanyService(domain.NewCompany(), nil, log)
			if opts.seed || cfg.SeedDemoData {
				if err := service.SeedDemoData(ctx, svc); err != nil {
					return fmt.Errorf("seed demo data: %w", err)
				}
			}

			return console.NewShell(svc, os.Stdin, os.Stdout, log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "minimum level written to stderr")
	return cmd
}
