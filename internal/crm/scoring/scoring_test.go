package scoring

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barhub/internal/crm/models"
)

func customer(key string, recency, visits int, spend int64) models.AggregatedCustomer {
	return models.AggregatedCustomer{
		UnifiedCustomer: models.UnifiedCustomer{
			IdentityKey: key,
			VisitCount:  visits,
			TotalSpend:  decimal.NewFromInt(spend),
		},
		RecencyDays: recency,
	}
}

func TestQuintileScore(t *testing.T) {
	// ten customers fill each quintile twice
	expected := []int{5, 5, 4, 4, 3, 3, 2, 2, 1, 1}
	for p, want := range expected {
		assert.Equal(t, want, QuintileScore(p, 10), "rank %d", p)
	}
	assert.Equal(t, 5, QuintileScore(0, 1))
	assert.Equal(t, 2, QuintileScore(3, 4))
	assert.Equal(t, 1, QuintileScore(4, 5))
}

func TestScoreEmptyPopulation(t *testing.T) {
	got := Score(nil)
	assert.Empty(t, got.Customers)
	assert.False(t, got.ApproximateScores)
}

func TestScoreBoundsAndOrdering(t *testing.T) {
	var pop []models.AggregatedCustomer
	for i := 0; i < 10; i++ {
		pop = append(pop, customer(fmt.Sprintf("c%02d", i), i*3, 10-i, int64(1000-i*50)))
	}

	got := Score(pop)

	require.Len(t, got.Customers, 10)
	assert.False(t, got.ApproximateScores)
	for i, c := range got.Customers {
		assert.Equal(t, pop[i].IdentityKey, c.IdentityKey, "input order is preserved")
		for _, s := range []int{c.RScore, c.FScore, c.MScore} {
			assert.GreaterOrEqual(t, s, 1)
			assert.LessOrEqual(t, s, 5)
		}
		assert.Equal(t, c.RScore+c.FScore+c.MScore, c.RFMTotal)
	}
	assert.Equal(t, 15, got.Customers[0].RFMTotal)
	assert.Equal(t, 3, got.Customers[9].RFMTotal)
}

func TestScoreBoundsForEveryPopulationSize(t *testing.T) {
	for n := 1; n <= 25; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var pop []models.AggregatedCustomer
			for i := 0; i < n; i++ {
				pop = append(pop, customer(fmt.Sprintf("c%02d", i), (i*7)%11, 1+i%4, int64(50+(i*37)%200)))
			}

			got := Score(pop)

			require.Len(t, got.Customers, n)
			assert.Equal(t, n < MinReliablePopulation, got.ApproximateScores)
			for _, c := range got.Customers {
				for _, s := range []int{c.RScore, c.FScore, c.MScore} {
					assert.GreaterOrEqual(t, s, 1)
					assert.LessOrEqual(t, s, 5)
				}
				assert.GreaterOrEqual(t, c.RFMTotal, 3)
				assert.LessOrEqual(t, c.RFMTotal, 15)
			}
		})
	}
}

func TestScoreTiesBreakByIdentityKey(t *testing.T) {
	pop := []models.AggregatedCustomer{
		customer("e", 5, 1, 10),
		customer("a", 5, 1, 10),
		customer("d", 5, 1, 10),
		customer("b", 5, 1, 10),
		customer("c", 5, 1, 10),
	}

	first := Score(pop)
	reversed := Score([]models.AggregatedCustomer{pop[4], pop[3], pop[2], pop[1], pop[0]})

	byKey := func(sp models.ScoredPopulation) map[string]int {
		out := map[string]int{}
		for _, c := range sp.Customers {
			out[c.IdentityKey] = c.RScore
		}
		return out
	}
	assert.Equal(t, byKey(first), byKey(reversed))
	assert.Equal(t, 5, byKey(first)["a"])
	assert.Equal(t, 1, byKey(first)["e"])
}

func TestScoreSmallPopulationIsApproximate(t *testing.T) {
	got := Score([]models.AggregatedCustomer{customer("a", 1, 3, 100), customer("b", 9, 1, 20)})

	assert.True(t, got.ApproximateScores)
	assert.Equal(t, 5, got.Customers[0].RScore)
	assert.Equal(t, 3, got.Customers[1].RScore)
}
