// Package aggregate derives recency, visit rate and spend aggregates from
// unified profiles.
package aggregate

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"barhub/internal/crm/models"
)

// Estimator prices visits that have no point-of-sale amount.
type Estimator struct {
	calibration models.Calibration
	flat        decimal.Decimal
}

// NewEstimator prices a visit at the tenant's average ticket for its date,
// or at flat when that date has no calibration.
func NewEstimator(calibration models.Calibration, flat decimal.Decimal) Estimator {
	return Estimator{calibration: calibration, flat: flat}
}

// EstimateVisit returns the estimated spend of one visit on date.
func (e Estimator) EstimateVisit(date time.Time) decimal.Decimal {
	if v, ok := e.calibration.Lookup(date); ok {
		return v
	}
	return e.flat
}

// Aggregate computes the aggregates of one profile as of today.
func Aggregate(profile models.UnifiedCustomer, today time.Time, est Estimator) models.AggregatedCustomer {
	out := models.AggregatedCustomer{
		UnifiedCustomer: profile,
		RecencyDays:     max(0, daysBetween(profile.LastSeen, today)),
	}

	span := max(1, daysBetween(profile.FirstSeen, profile.LastSeen))
	out.AvgVisitRate = float64(profile.VisitCount) / float64(span)

	if !profile.HasRealSpend && len(profile.EstimatedVisitDates) > 0 {
		total := decimal.Zero
		for _, d := range profile.EstimatedVisitDates {
			total = total.Add(est.EstimateVisit(d))
		}
		out.TotalSpend = total
		out.IsEstimatedSpend = true
	}
	return out
}

// All aggregates every profile, ordered by identity key.
func All(profiles []models.UnifiedCustomer, today time.Time, est Estimator) []models.AggregatedCustomer {
	out := make([]models.AggregatedCustomer, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Aggregate(p, today, est))
	}
	slices.SortFunc(out, func(a, b models.AggregatedCustomer) int {
		return cmp.Compare(a.IdentityKey, b.IdentityKey)
	})
	return out
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(models.CivilDate(b).Sub(models.CivilDate(a)).Hours() / 24)
}
