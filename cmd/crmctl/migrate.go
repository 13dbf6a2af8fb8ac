package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"barhub/internal/platform/config"
	"barhub/internal/platform/kafka"
	"barhub/internal/platform/logger"
	"barhub/internal/platform/postgres"
)

func migrateCmd() *cobra.Command {
	var (
		partitions  int32
		replication int16
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and create the data-quality topic",
		Long: `Applies the embedded goose migrations to DATABASE_URL. When KAFKA_BROKERS
is set, also creates CRM_DATA_QUALITY_TOPIC if it does not exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("DATABASE_URL is required")
			}

			ctx := cmd.Context()
			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
			db, err := postgres.Open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(ctx, db, log); err != nil {
				return err
			}

			producer, err := kafka.NewProducer(ctx, cfg.Kafka)
			if err != nil {
				return err
			}
			if producer == nil {
				return nil
			}
			defer producer.Close()

			if err := kafka.EnsureTopic(ctx, producer, cfg.Kafka.DataQualityTopic, partitions, replication); err != nil {
				return fmt.Errorf("ensure topic %s: %w", cfg.Kafka.DataQualityTopic, err)
			}
			log.InfoContext(ctx, "topic ready", "topic", cfg.Kafka.DataQualityTopic)
			return nil
		},
	}

	cmd.Flags().Int32Var(&partitions, "partitions", 3, "partitions for a newly created topic")
	cmd.Flags().Int16Var(&replication, "replication", 1, "replication factor for a newly created topic")

	return cmd
}
