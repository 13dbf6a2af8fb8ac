package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// UnifiedCustomer is one person as seen across all sources, keyed by a
// stable identity key assigned at first sighting.
type UnifiedCustomer struct {
	IdentityKey         string          `json:"identity_key"`
	DisplayName         string          `json:"display_name"`
	Email               string          `json:"email,omitempty"`
	Phone               string          `json:"phone,omitempty"`
	Sources             []Source        `json:"sources"`
	VisitCount          int             `json:"visit_count"`
	TotalSpend          decimal.Decimal `json:"total_spend"`
	HasRealSpend        bool            `json:"has_real_spend"`
	EstimatedVisitDates []time.Time     `json:"estimated_visit_dates,omitempty"`
	FirstSeen           time.Time       `json:"first_seen"`
	LastSeen            time.Time       `json:"last_seen"`
}

// HasSource reports whether any folded signal came from s.
func (c *UnifiedCustomer) HasSource(s Source) bool {
	return slices.Contains(c.Sources, s)
}

// AggregatedCustomer adds the temporal and monetary aggregates used for scoring.
type AggregatedCustomer struct {
	UnifiedCustomer
	RecencyDays      int     `json:"recency_days"`
	AvgVisitRate     float64 `json:"avg_visit_rate"`
	IsEstimatedSpend bool    `json:"is_estimated_spend"`
}

// Segment is one entry of the closed segment set.
type Segment struct {
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Color    string   `json:"color"`
	Priority int      `json:"priority"`
	Actions  []string `json:"actions"`
}

// ScoredCustomer is an aggregated customer with quintile scores and its segment.
type ScoredCustomer struct {
	AggregatedCustomer
	RScore   int     `json:"r_score"`
	FScore   int     `json:"f_score"`
	MScore   int     `json:"m_score"`
	RFMTotal int     `json:"rfm_total"`
	Segment  Segment `json:"segment"`
}

// ScoredPopulation is the full scored tenant population for one run.
// ApproximateScores is set when the population is too small for meaningful quintiles.
type ScoredPopulation struct {
	Customers         []ScoredCustomer `json:"customers"`
	ApproximateScores bool             `json:"approximate_scores"`
	ComputedAt        time.Time        `json:"computed_at"`
}
