package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDataQualityReport(t *testing.T) {
	var r DataQualityReport
	assert.Zero(t, r.Total())
	assert.Empty(t, r.Entries())

	r.Add(SourcePOS, ReasonMissingName)
	r.Add(SourceTicketing, ReasonMissingEventDate)
	r.Add(SourcePOS, ReasonMissingName)

	assert.Equal(t, 3, r.Total())
	assert.Equal(t, 2, r.Count(SourcePOS, ReasonMissingName))
	assert.Equal(t, []DataQualityEntry{
		{Source: SourceTicketing, Reason: ReasonMissingEventDate, Count: 1},
		{Source: SourcePOS, Reason: ReasonMissingName, Count: 2},
	}, r.Entries())
}

func TestCalibrationLookup(t *testing.T) {
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	cal := Calibration{
		"2024-03-09": decimal.NewFromInt(80),
		"2024-03-10": decimal.Zero,
	}

	v, ok := cal.Lookup(day)
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(80).Equal(v))

	_, ok = cal.Lookup(day.AddDate(0, 0, 1))
	assert.False(t, ok, "zero average ticket is treated as missing")

	_, ok = cal.Lookup(day.AddDate(0, 0, 2))
	assert.False(t, ok)
}

func TestCivilDate(t *testing.T) {
	sp := time.FixedZone("BRT", -3*3600)
	late := time.Date(2024, 3, 9, 23, 30, 0, 0, sp)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), CivilDate(late))
}
