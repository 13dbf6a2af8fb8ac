package store

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"barhub/internal/crm/models"
	pstrings "barhub/pkg/platform/strings"
)

// POSPayment is one point-of-sale payment row.
type POSPayment struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Amount        decimal.Decimal
	BusinessDate  time.Time
}

type dailyKey struct {
	name, email, phone string
	date               string
}

// CollapsePOSDaily drops placeholder payers and sums each remaining payer's
// payments per business day, one signal per payer-day, ordered by date then name.
func CollapsePOSDaily(payments []POSPayment) []models.RawSignal {
	byDay := make(map[dailyKey]*models.RawSignal)
	for _, p := range payments {
		if IsPlaceholderName(p.CustomerName) {
			continue
		}
		date := models.CivilDate(p.BusinessDate)
		k := dailyKey{
			name:  pstrings.LowerTrim(p.CustomerName),
			email: pstrings.NormalizeEmail(p.CustomerEmail),
			phone: pstrings.DigitsOnly(p.CustomerPhone),
			date:  models.DateKey(date),
		}
		sig, ok := byDay[k]
		if !ok {
			total := decimal.Zero
			sig = &models.RawSignal{
				Source:    models.SourcePOS,
				Name:      strings.TrimSpace(p.CustomerName),
				Email:     strings.TrimSpace(p.CustomerEmail),
				Phone:     strings.TrimSpace(p.CustomerPhone),
				Amount:    &total,
				EventDate: date,
				Status:    "paid",
			}
			byDay[k] = sig
		}
		sum := sig.Amount.Add(p.Amount)
		sig.Amount = &sum
	}

	out := make([]models.RawSignal, 0, len(byDay))
	for _, sig := range byDay {
		out = append(out, *sig)
	}
	slices.SortFunc(out, func(a, b models.RawSignal) int {
		if c := a.EventDate.Compare(b.EventDate); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Email+a.Phone, b.Email+b.Phone)
	})
	return out
}
