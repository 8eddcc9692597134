package cmd

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/AbdelliBrahim0/DashboardAdmin/connection"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return connection.StartServer(ctx, a.cfg, a.log)
}
