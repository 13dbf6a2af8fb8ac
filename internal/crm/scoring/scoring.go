// Package scoring assigns rank-based RFM quintile scores across a population.
package scoring

import (
	"cmp"
	"slices"
	"strings"

	"barhub/internal/crm/models"
)

// MinReliablePopulation is the smallest population for which quintiles mean anything.
const MinReliablePopulation = 5

// Score ranks the population on recency (ascending), visit count (descending)
// and total spend (descending). Ties fall back to identity key so the same
// input always scores the same. Scores run 1 (worst quintile) to 5 (best).
// Segments are left empty; see segment.Assign.
func Score(population []models.AggregatedCustomer) models.ScoredPopulation {
	n := len(population)
	out := models.ScoredPopulation{
		Customers:         make([]models.ScoredCustomer, n),
		ApproximateScores: n > 0 && n < MinReliablePopulation,
	}
	if n == 0 {
		return out
	}

	for i, c := range population {
		out.Customers[i] = models.ScoredCustomer{AggregatedCustomer: c}
	}

	assign(population, func(a, b models.AggregatedCustomer) int {
		return cmp.Compare(a.RecencyDays, b.RecencyDays)
	}, func(i, score int) { out.Customers[i].RScore = score })

	assign(population, func(a, b models.AggregatedCustomer) int {
		return cmp.Compare(b.VisitCount, a.VisitCount)
	}, func(i, score int) { out.Customers[i].FScore = score })

	assign(population, func(a, b models.AggregatedCustomer) int {
		return b.TotalSpend.Cmp(a.TotalSpend)
	}, func(i, score int) { out.Customers[i].MScore = score })

	for i := range out.Customers {
		c := &out.Customers[i]
		c.RFMTotal = c.RScore + c.FScore + c.MScore
	}
	return out
}

// QuintileScore maps rank p (0-based) within a population of n to 1..5.
func QuintileScore(p, n int) int {
	bucket := min(max((p*5)/n, 0), 4)
	return 5 - bucket
}

func assign(pop []models.AggregatedCustomer, primary func(a, b models.AggregatedCustomer) int, set func(i, score int)) {
	order := make([]int, len(pop))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		if c := primary(pop[i], pop[j]); c != 0 {
			return c
		}
		return strings.Compare(pop[i].IdentityKey, pop[j].IdentityKey)
	})
	for rank, i := range order {
		set(i, QuintileScore(rank, len(pop)))
	}
}
