package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	seed bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "payroll",
		Short:         "HR payroll record keeper",
		Long:          "Keeps departments and employees in memory and produces weekly payroll and end-of-year reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.seed, "seed", false, "load demo departments and employees on start")

	root.AddCommand(newConsoleCmd(opts), newServeCmd(opts), newOperatorCmd())
	return root
}

// @title                       HR Payroll API
// @version                     3.0
// @description                 Departments, hires, part-time hours and payroll reports.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
