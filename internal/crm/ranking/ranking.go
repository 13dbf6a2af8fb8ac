// Package ranking orders a scored population and cuts filtered pages from it.
package ranking

import (
	"cmp"
	"slices"
	"strings"

	"barhub/internal/crm/models"
	"barhub/internal/crm/segment"
)

// Rank sorts customers by segment priority, then RFM total (both descending),
// then identity key ascending. The input slice is not modified.
func Rank(customers []models.ScoredCustomer) []models.ScoredCustomer {
	out := slices.Clone(customers)
	slices.SortFunc(out, func(a, b models.ScoredCustomer) int {
		if c := cmp.Compare(b.Segment.Priority, a.Segment.Priority); c != 0 {
			return c
		}
		if c := cmp.Compare(b.RFMTotal, a.RFMTotal); c != 0 {
			return c
		}
		return strings.Compare(a.IdentityKey, b.IdentityKey)
	})
	return out
}

// ComputeStats summarizes the whole population. Segments with no customers
// are reported with a zero count, in catalog order.
func ComputeStats(pop models.ScoredPopulation) models.Stats {
	catalog := segment.Catalog()
	counts := make(map[string]int, len(catalog))
	stats := models.Stats{
		Total:             len(pop.Customers),
		ApproximateScores: pop.ApproximateScores,
	}
	for _, c := range pop.Customers {
		counts[c.Segment.Slug]++
		if c.IsEstimatedSpend {
			stats.EstimatedSpend++
		}
	}
	stats.PerSegment = make([]models.SegmentCount, 0, len(catalog))
	for _, s := range catalog {
		stats.PerSegment = append(stats.PerSegment, models.SegmentCount{Slug: s.Slug, Name: s.Name, Count: counts[s.Slug]})
	}
	return stats
}

// Paginate computes stats on the full population, then applies the segment
// filter (name or slug, case-insensitive; empty means all) and cuts page
// (1-based). pop.Customers must already be ranked.
func Paginate(pop models.ScoredPopulation, filter string, page, pageSize int) models.Page {
	page = max(page, 1)
	pageSize = max(pageSize, 1)

	result := models.Page{
		Stats: ComputeStats(pop),
		Items: []models.ScoredCustomer{},
	}

	filtered := pop.Customers
	if f := strings.TrimSpace(filter); f != "" {
		filtered = make([]models.ScoredCustomer, 0, len(pop.Customers))
		for _, c := range pop.Customers {
			if strings.EqualFold(c.Segment.Slug, f) || strings.EqualFold(c.Segment.Name, f) {
				filtered = append(filtered, c)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	result.Pagination = models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	// Compared in pages so (page-1)*pageSize cannot overflow.
	if page > totalPages {
		return result
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	result.Items = slices.Clone(filtered[start:end])
	return result
}

// RankAndPage ranks pop and returns one filtered page of it.
func RankAndPage(pop models.ScoredPopulation, filter string, page, pageSize int) models.Page {
	pop.Customers = Rank(pop.Customers)
	return Paginate(pop, filter, page, pageSize)
}
