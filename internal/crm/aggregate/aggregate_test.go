package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"barhub/internal/crm/models"
)

var flat = decimal.NewFromInt(100)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateRecencyAndRate(t *testing.T) {
	profile := models.UnifiedCustomer{
		IdentityKey:  "ana@x.com",
		VisitCount:   6,
		FirstSeen:    day(1),
		LastSeen:     day(4),
		HasRealSpend: true,
		TotalSpend:   decimal.NewFromInt(300),
	}
	today := time.Date(2024, 3, 10, 22, 15, 0, 0, time.UTC)

	got := Aggregate(profile, today, NewEstimator(nil, flat))

	assert.Equal(t, 6, got.RecencyDays)
	assert.InDelta(t, 2.0, got.AvgVisitRate, 1e-9)
	assert.False(t, got.IsEstimatedSpend)
	assert.True(t, decimal.NewFromInt(300).Equal(got.TotalSpend))
}

func TestAggregateSameDayAndFutureVisits(t *testing.T) {
	profile := models.UnifiedCustomer{VisitCount: 3, FirstSeen: day(9), LastSeen: day(12)}

	got := Aggregate(profile, day(10), NewEstimator(nil, flat))
	assert.Equal(t, 0, got.RecencyDays, "recency never goes negative")

	single := models.UnifiedCustomer{VisitCount: 2, FirstSeen: day(9), LastSeen: day(9)}
	got = Aggregate(single, day(10), NewEstimator(nil, flat))
	assert.InDelta(t, 2.0, got.AvgVisitRate, 1e-9, "span is at least one day")
}

func TestAggregateEstimatedSpendUsesCalibration(t *testing.T) {
	profile := models.UnifiedCustomer{
		VisitCount:          3,
		FirstSeen:           day(1),
		LastSeen:            day(3),
		TotalSpend:          decimal.NewFromInt(300),
		EstimatedVisitDates: []time.Time{day(1), day(2), day(3)},
	}
	cal := models.Calibration{
		"2024-03-01": decimal.RequireFromString("80.50"),
		"2024-03-03": decimal.RequireFromString("120"),
	}

	got := Aggregate(profile, day(5), NewEstimator(cal, flat))

	assert.True(t, got.IsEstimatedSpend)
	assert.True(t, decimal.RequireFromString("300.50").Equal(got.TotalSpend), "got %s", got.TotalSpend)
}

func TestAllOrdersByIdentityKey(t *testing.T) {
	profiles := []models.UnifiedCustomer{
		{IdentityKey: "pos_zeca", FirstSeen: day(1), LastSeen: day(1), VisitCount: 1},
		{IdentityKey: "ana@x.com", FirstSeen: day(1), LastSeen: day(1), VisitCount: 1},
	}

	got := All(profiles, day(2), NewEstimator(nil, flat))

	assert.Equal(t, "ana@x.com", got[0].IdentityKey)
	assert.Equal(t, "pos_zeca", got[1].IdentityKey)
}
