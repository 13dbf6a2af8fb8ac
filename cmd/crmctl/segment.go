package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"barhub/internal/crm"
	"barhub/internal/crm/dataquality"
	"barhub/internal/crm/handler"
	"barhub/internal/crm/models"
	"barhub/internal/crm/service"
	"barhub/internal/crm/store"
	"barhub/internal/platform/config"
	"barhub/internal/platform/logger"
	"barhub/internal/platform/postgres"
	id "barhub/pkg/domain"
)

func segmentCmd() *cobra.Command {
	var (
		tenant   string
		page     int
		pageSize int
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Compute one page of a tenant's segmented customers",
		Long: `Runs identity resolution and RFM segmentation against DATABASE_URL
and prints the page as JSON, in the same shape GET /crm/segments returns.

Examples:
  crmctl segment --tenant 6f9f1c64-6a3e-4c55-9d7e-0f52c2b1d0a1
  crmctl segment --tenant <id> --segment at_risk --page-size 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := id.ParseTenantID(tenant)
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("DATABASE_URL is required")
			}
			if !cmd.Flags().Changed("page-size") {
				pageSize = cfg.CRM.DefaultPageSize
			}

			ctx := cmd.Context()
			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
			db, err := postgres.Open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			svc, err := crm.NewService(store.NewPostgres(db),
				service.WithLogger(log),
				service.WithDataQualityPublisher(dataquality.NewLogPublisher(log)),
				service.WithFlatVisitEstimate(cfg.CRM.FlatVisitEstimate),
				service.WithFetchTimeout(cfg.CRM.FetchTimeout),
				service.WithMaxPageSize(cfg.CRM.MaxPageSize),
			)
			if err != nil {
				return err
			}

			result, err := svc.Segment(ctx, models.Query{
				TenantID: tenantID,
				Page:     page,
				PageSize: pageSize,
				Segment:  filter,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(handler.FromPage(result))
		},
	}

	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant ID (UUID)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().IntVarP(&pageSize, "page-size", "n", 0, "items per page (defaults to CRM_DEFAULT_PAGE_SIZE)")
	cmd.Flags().StringVarP(&filter, "segment", "s", "", "filter by segment name or slug")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}
