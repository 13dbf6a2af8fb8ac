// Package dataquality publishes counts of signals skipped during identity
// resolution so source owners can fix their data.
package dataquality

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
	"barhub/pkg/requestcontext"
)

// EventType tags data-quality events on the wire.
const EventType = "crm.signals_dropped"

// Event is the payload published for one segmentation run with drops.
type Event struct {
	Type       string                    `json:"type"`
	TenantID   string                    `json:"tenant_id"`
	RequestID  string                    `json:"request_id,omitempty"`
	OccurredAt time.Time                 `json:"occurred_at"`
	Total      int                       `json:"total"`
	Dropped    []models.DataQualityEntry `json:"dropped"`
}

// NewEvent builds the event for report.
func NewEvent(ctx context.Context, tenantID id.TenantID, report models.DataQualityReport) Event {
	return Event{
		Type:       EventType,
		TenantID:   tenantID.String(),
		RequestID:  requestcontext.RequestID(ctx),
		OccurredAt: requestcontext.Now(ctx).UTC(),
		Total:      report.Total(),
		Dropped:    report.Entries(),
	}
}

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, tenantID id.TenantID, report models.DataQualityReport) error {
	if report.Total() == 0 {
		return nil
	}
	ev := NewEvent(ctx, tenantID, report)
	p.logger.InfoContext(ctx, "data quality event",
		"type", ev.Type,
		"tenant_id", ev.TenantID,
		"request_id", ev.RequestID,
		"total", ev.Total,
		"dropped", ev.Dropped,
	)
	return nil
}

// Producer is the subset of *kgo.Client used for publishing.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// KafkaPublisher produces events to a topic, keyed by tenant so a tenant's
// events stay ordered within one partition.
type KafkaPublisher struct {
	producer Producer
	topic    string
}

func NewKafkaPublisher(producer Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, tenantID id.TenantID, report models.DataQualityReport) error {
	if report.Total() == 0 {
		return nil
	}
	payload, err := json.Marshal(NewEvent(ctx, tenantID, report))
	if err != nil {
		return fmt.Errorf("encode data quality event: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(tenantID.String()),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(EventType)},
		},
	}
	if err := p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce data quality event: %w", err)
	}
	return nil
}
