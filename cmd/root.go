// Package cmd is the command line of the dashboard API.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AbdelliBrahim0/DashboardAdmin/config"
	"github.com/AbdelliBrahim0/DashboardAdmin/logger"
)

type app struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRootCmd builds the command tree. Running it without a subcommand serves
// the API.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Wallet admin dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{
				Level:   cfg.LogLevel,
				Console: !cfg.IsProduction(),
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newMerchantsCmd(a))
	return root
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
