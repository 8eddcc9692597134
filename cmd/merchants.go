package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AbdelliBrahim0/DashboardAdmin/connection"
	"github.com/AbdelliBrahim0/DashboardAdmin/controller/render"
	"github.com/AbdelliBrahim0/DashboardAdmin/metrics"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

func newMerchantsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchants",
		Short: "Inspect and repair merchant records",
	}
	cmd.AddCommand(newMerchantsFindCmd(a))
	cmd.AddCommand(newMerchantsDuplicatesCmd(a))
	return cmd
}

func newMerchantsFindCmd(a *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look a merchant up by owner email, merging duplicates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMerchants(cmd, func(svc *services.MerchantService) error {
				id, rec, err := svc.FindByEmail(cmd.Context(), email)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), render.Record(id, rec))
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "owner email to look up")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newMerchantsDuplicatesCmd(a *app) *cobra.Command {
	var merge bool
	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "List owner emails shared by several merchants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMerchants(cmd, func(svc *services.MerchantService) error {
				groups, err := svc.Duplicates(cmd.Context())
				if err != nil {
					return err
				}
				if err := writeJSON(cmd.OutOrStdout(), groups); err != nil {
					return err
				}
				if !merge || len(groups) == 0 {
					return nil
				}
				removed, err := svc.MergeDuplicates(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "merged %d groups, removed %d records\n", len(groups), removed)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&merge, "merge", false, "merge every duplicate group into its oldest record")
	return cmd
}

func (a *app) withMerchants(cmd *cobra.Command, fn func(*services.MerchantService) error) error {
	svc, closeStore, err := connection.Bootstrap(cmd.Context(), a.cfg, a.log, metrics.New())
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			a.log.Error(err, "closing store")
		}
	}()
	return fn(svc.Merchants)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
