package ranking

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barhub/internal/crm/models"
	"barhub/internal/crm/segment"
)

func scored(key string, r, f, m int, estimated bool) models.ScoredCustomer {
	c := models.ScoredCustomer{RScore: r, FScore: f, MScore: m, RFMTotal: r + f + m}
	c.IdentityKey = key
	c.IsEstimatedSpend = estimated
	c.Segment = segment.Classify(r, f, m)
	return c
}

func population() models.ScoredPopulation {
	return models.ScoredPopulation{Customers: []models.ScoredCustomer{
		scored("inactive-1", 1, 1, 1, true),
		scored("regular-1", 3, 3, 3, false),
		scored("vip-b", 5, 5, 4, false),
		scored("risk-1", 1, 5, 5, false),
		scored("vip-a", 5, 5, 4, false),
		scored("vip-top", 5, 5, 5, true),
		scored("new-1", 5, 1, 1, true),
	}}
}

func keys(items []models.ScoredCustomer) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.IdentityKey
	}
	return out
}

func TestRankOrder(t *testing.T) {
	pop := population()
	ranked := Rank(pop.Customers)

	assert.Equal(t, []string{"vip-top", "vip-a", "vip-b", "risk-1", "new-1", "regular-1", "inactive-1"}, keys(ranked))
	assert.Equal(t, "inactive-1", pop.Customers[0].IdentityKey, "input untouched")
}

func TestPaginateStatsIgnoreFilter(t *testing.T) {
	pop := population()

	all := RankAndPage(pop, "", 1, 3)
	filtered := RankAndPage(pop, "VIP Champions", 1, 3)

	assert.Equal(t, all.Stats, filtered.Stats)
	assert.Equal(t, 7, filtered.Stats.Total)
	assert.Equal(t, 3, filtered.Stats.EstimatedSpend)
	require.Len(t, filtered.Stats.PerSegment, 7)

	counts := map[string]int{}
	for _, sc := range filtered.Stats.PerSegment {
		counts[sc.Slug] = sc.Count
	}
	assert.Equal(t, 3, counts[segment.SlugVIPChampions])
	assert.Equal(t, 0, counts[segment.SlugLoyal], "empty segments are reported")

	assert.Equal(t, []string{"vip-top", "vip-a", "vip-b"}, keys(filtered.Items))
	assert.Equal(t, models.Pagination{Page: 1, PageSize: 3, Total: 3, TotalPages: 1, HasMore: false}, filtered.Pagination)
}

func TestPaginateFilterBySlug(t *testing.T) {
	page := RankAndPage(population(), "AT_RISK", 1, 10)
	assert.Equal(t, []string{"risk-1"}, keys(page.Items))

	page = RankAndPage(population(), "whales", 1, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Pagination.TotalPages)
	assert.Equal(t, 7, page.Stats.Total)
}

// Walking all pages yields every filtered customer exactly once.
func TestPaginateCoversEveryCustomerOnce(t *testing.T) {
	var customers []models.ScoredCustomer
	for i := 0; i < 23; i++ {
		customers = append(customers, scored(fmt.Sprintf("c%02d", i), 1+i%5, 1+(i/5)%5, 1+(i*7)%5, false))
	}
	pop := models.ScoredPopulation{Customers: Rank(customers)}

	for _, size := range []int{1, 4, 5, 23, 50} {
		seen := map[string]int{}
		first := Paginate(pop, "", 1, size)
		for p := 1; p <= first.Pagination.TotalPages; p++ {
			pg := Paginate(pop, "", p, size)
			assert.Equal(t, p < pg.Pagination.TotalPages, pg.Pagination.HasMore)
			for _, c := range pg.Items {
				seen[c.IdentityKey]++
			}
		}
		assert.Len(t, seen, 23, "page size %d", size)
		for k, n := range seen {
			assert.Equal(t, 1, n, "%s seen %d times with page size %d", k, n, size)
		}
	}
}

func TestPaginatePastTheEnd(t *testing.T) {
	page := RankAndPage(population(), "", 5, 3)

	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasMore)

	t.Run("page number near MaxInt", func(t *testing.T) {
		huge := math.MaxInt/3 + 2
		var got models.Page
		require.NotPanics(t, func() {
			got = RankAndPage(population(), "", huge, 3)
		})
		assert.Empty(t, got.Items)
		assert.NotNil(t, got.Items)
		assert.Equal(t, huge, got.Pagination.Page)
		assert.False(t, got.Pagination.HasMore)
	})

	t.Run("empty population", func(t *testing.T) {
		got := Paginate(models.ScoredPopulation{}, "", 1, 3)
		assert.Empty(t, got.Items)
		assert.NotNil(t, got.Items)
		assert.Equal(t, 0, got.Pagination.TotalPages)
	})
}

func TestStatsCarryApproximateFlag(t *testing.T) {
	pop := models.ScoredPopulation{
		Customers:         []models.ScoredCustomer{scored("a", 5, 5, 5, false)},
		ApproximateScores: true,
	}
	assert.True(t, ComputeStats(pop).ApproximateScores)
}
