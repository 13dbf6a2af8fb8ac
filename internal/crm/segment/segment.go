// Package segment classifies RFM score triples into the closed segment set.
package segment

import (
	"slices"
	"strings"

	"barhub/internal/crm/models"
)

const (
	SlugVIPChampions  = "vip_champions"
	SlugLoyal         = "loyal_customers"
	SlugHighPotential = "high_potential"
	SlugAtRisk        = "at_risk"
	SlugPromisingNew  = "promising_new"
	SlugInactive      = "inactive"
	SlugRegular       = "regular"
)

type rule struct {
	matches func(r, f, m int) bool
	segment models.Segment
}

// rules is evaluated top to bottom; the first match wins and the last rule
// matches everything.
var rules = []rule{
	{
		matches: func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 },
		segment: models.Segment{
			Name: "VIP Champions", Slug: SlugVIPChampions, Color: "#7C3AED", Priority: 5,
			Actions: []string{
				"Invite to exclusive events before public sale",
				"Offer a reserved table or VIP area upgrade",
				"Send a personal thank-you with a courtesy drink",
			},
		},
	},
	{
		matches: func(r, f, m int) bool { return r >= 4 && (f >= 3 || m >= 3) },
		segment: models.Segment{
			Name: "Loyal Customers", Slug: SlugLoyal, Color: "#2563EB", Priority: 4,
			Actions: []string{
				"Enroll in the loyalty program",
				"Announce new menu items first",
				"Ask for a review or referral",
			},
		},
	},
	{
		matches: func(r, f, m int) bool { return r >= 3 && f <= 2 && m >= 3 },
		segment: models.Segment{
			Name: "High Potential", Slug: SlugHighPotential, Color: "#0891B2", Priority: 4,
			Actions: []string{
				"Offer a return-visit voucher within two weeks",
				"Recommend events matching past purchases",
			},
		},
	},
	{
		matches: func(r, f, m int) bool { return r <= 2 && f >= 4 },
		segment: models.Segment{
			Name: "At Risk (Churn)", Slug: SlugAtRisk, Color: "#DC2626", Priority: 5,
			Actions: []string{
				"Send a win-back offer now",
				"Reach out personally to ask about their last visit",
				"Highlight what changed since they last came in",
			},
		},
	},
	{
		matches: func(r, f, m int) bool { return r >= 4 && f <= 2 },
		segment: models.Segment{
			Name: "Promising New", Slug: SlugPromisingNew, Color: "#16A34A", Priority: 3,
			Actions: []string{
				"Send a welcome message with the weekly schedule",
				"Offer a second-visit discount",
			},
		},
	},
	{
		matches: func(r, f, m int) bool { return r <= 2 && f <= 2 && m <= 2 },
		segment: models.Segment{
			Name: "Inactive", Slug: SlugInactive, Color: "#6B7280", Priority: 1,
			Actions: []string{
				"Include in low-cost reactivation campaigns",
				"Remove from high-cost outreach lists",
			},
		},
	},
	{
		matches: func(r, f, m int) bool { return true },
		segment: models.Segment{
			Name: "Regular", Slug: SlugRegular, Color: "#F59E0B", Priority: 2,
			Actions: []string{
				"Keep in the regular newsletter",
				"Promote themed nights to lift frequency",
			},
		},
	},
}

// Classify returns the segment of the first rule matching (r, f, m).
func Classify(r, f, m int) models.Segment {
	for _, rl := range rules {
		if rl.matches(r, f, m) {
			return clone(rl.segment)
		}
	}
	// unreachable: the last rule matches everything
	return clone(rules[len(rules)-1].segment)
}

// Assign classifies every scored customer in place.
func Assign(customers []models.ScoredCustomer) {
	for i := range customers {
		c := &customers[i]
		c.Segment = Classify(c.RScore, c.FScore, c.MScore)
	}
}

// Catalog returns every segment in rule order.
func Catalog() []models.Segment {
	out := make([]models.Segment, len(rules))
	for i, rl := range rules {
		out[i] = clone(rl.segment)
	}
	return out
}

// Lookup finds a segment by name or slug, ignoring case and surrounding space.
func Lookup(nameOrSlug string) (models.Segment, bool) {
	want := strings.TrimSpace(nameOrSlug)
	for _, rl := range rules {
		if strings.EqualFold(rl.segment.Slug, want) || strings.EqualFold(rl.segment.Name, want) {
			return clone(rl.segment), true
		}
	}
	return models.Segment{}, false
}

func clone(s models.Segment) models.Segment {
	s.Actions = slices.Clone(s.Actions)
	return s
}
