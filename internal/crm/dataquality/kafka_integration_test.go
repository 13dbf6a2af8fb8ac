//go:build integration

package dataquality_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"barhub/internal/crm/dataquality"
	"barhub/internal/crm/models"
	"barhub/internal/platform/config"
	"barhub/internal/platform/kafka"
	id "barhub/pkg/domain"
	"barhub/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	broker string
	topic  string
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).Broker
	s.topic = "crm.data-quality." + uuid.NewString()[:8]
}

func (s *KafkaPublisherSuite) TestPublishedEventIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	producer, err := kafka.NewProducer(ctx, config.KafkaConfig{Brokers: []string{s.broker}, DataQualityTopic: s.topic})
	s.Require().NoError(err)
	defer producer.Close()
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, s.topic, 1, 1))
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, s.topic, 1, 1), "existing topic is not an error")

	tenant := id.TenantID(uuid.New())
	var report models.DataQualityReport
	report.Add(models.SourceReservation, models.ReasonMissingName)
	s.Require().NoError(dataquality.NewKafkaPublisher(producer, s.topic).Publish(ctx, tenant, report))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics(s.topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().Len(records, 1)

	var ev dataquality.Event
	s.Require().NoError(json.Unmarshal(records[0].Value, &ev))
	s.Equal(tenant.String(), ev.TenantID)
	s.Equal(1, ev.Total)
}
