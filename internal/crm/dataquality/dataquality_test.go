package dataquality

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
	"barhub/pkg/requestcontext"
)

type recordingProducer struct {
	records []*kgo.Record
	err     error
}

func (p *recordingProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	p.records = append(p.records, rs...)
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r, Err: p.err})
	}
	return results
}

func sampleReport() models.DataQualityReport {
	var r models.DataQualityReport
	r.Add(models.SourcePOS, models.ReasonMissingName)
	r.Add(models.SourceTicketing, models.ReasonMissingEventDate)
	return r
}

func TestKafkaPublisherProducesKeyedEvent(t *testing.T) {
	tenant := id.TenantID(uuid.New())
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(requestcontext.WithRequestID(context.Background(), "req-1"), now)
	producer := &recordingProducer{}

	err := NewKafkaPublisher(producer, "crm.dq").Publish(ctx, tenant, sampleReport())
	require.NoError(t, err)
	require.Len(t, producer.records, 1)

	rec := producer.records[0]
	assert.Equal(t, "crm.dq", rec.Topic)
	assert.Equal(t, tenant.String(), string(rec.Key))

	var ev Event
	require.NoError(t, json.Unmarshal(rec.Value, &ev))
	assert.Equal(t, EventType, ev.Type)
	assert.Equal(t, "req-1", ev.RequestID)
	assert.Equal(t, 2, ev.Total)
	assert.Equal(t, now, ev.OccurredAt)
	assert.Equal(t, models.SourceTicketing, ev.Dropped[0].Source)
}

func TestKafkaPublisherSkipsCleanRuns(t *testing.T) {
	producer := &recordingProducer{}
	err := NewKafkaPublisher(producer, "crm.dq").Publish(context.Background(), id.TenantID(uuid.New()), models.DataQualityReport{})
	require.NoError(t, err)
	assert.Empty(t, producer.records)
}

func TestKafkaPublisherSurfacesProduceError(t *testing.T) {
	producer := &recordingProducer{err: errors.New("broker down")}
	err := NewKafkaPublisher(producer, "crm.dq").Publish(context.Background(), id.TenantID(uuid.New()), sampleReport())
	assert.ErrorContains(t, err, "broker down")
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := NewLogPublisher(logger).Publish(context.Background(), id.TenantID(uuid.New()), sampleReport())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"type":"crm.signals_dropped"`)
	assert.Contains(t, buf.String(), `"total":2`)
}
