// Package identity merges raw signals from all sources into unified customer
// profiles keyed by a deterministic identity key.
package identity

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"barhub/internal/crm/models"
	pstrings "barhub/pkg/platform/strings"
)

// MinPhoneDigits is the shortest digit string accepted as a phone identity.
const MinPhoneDigits = 8

// Options tunes the fold.
type Options struct {
	// FlatVisitEstimate is added per ticketing/reservation visit until a
	// point-of-sale amount replaces it.
	FlatVisitEstimate decimal.Decimal
}

// Resolution is the outcome of one fold: profiles by identity key plus
// the count of skipped signals.
type Resolution struct {
	Customers map[string]*models.UnifiedCustomer
	Report    models.DataQualityReport
}

// Sorted returns the profiles ordered by identity key.
func (r Resolution) Sorted() []models.UnifiedCustomer {
	keys := make([]string, 0, len(r.Customers))
	for k := range r.Customers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]models.UnifiedCustomer, 0, len(keys))
	for _, k := range keys {
		out = append(out, *r.Customers[k])
	}
	return out
}

// Key derives the identity key of a signal: a plausible email first, then a
// phone with enough digits, then the name scoped to the signal's source.
// A bare name never matches across sources.
func Key(sig models.RawSignal) string {
	if email := pstrings.NormalizeEmail(sig.Email); email != "" {
		return email
	}
	if phone := normalizePhone(sig.Phone); phone != "" {
		return phone
	}
	return string(sig.Source) + "_" + pstrings.LowerTrim(sig.Name)
}

func normalizePhone(raw string) string {
	digits := pstrings.DigitsOnly(raw)
	if len(digits) < MinPhoneDigits {
		return ""
	}
	return digits
}

// Resolve folds signals into unified profiles. Ticketing folds before
// reservation, which folds before point-of-sale, whatever the input order,
// so only point-of-sale amounts ever replace estimated spend. The input
// slice is not modified and every call returns a fresh map.
func Resolve(signals []models.RawSignal, opts Options) Resolution {
	ordered := slices.Clone(signals)
	slices.SortStableFunc(ordered, func(a, b models.RawSignal) int {
		return a.Source.Precedence() - b.Source.Precedence()
	})

	res := Resolution{Customers: make(map[string]*models.UnifiedCustomer)}
	for _, sig := range ordered {
		if reason, ok := validate(sig); !ok {
			res.Report.Add(sig.Source, reason)
			continue
		}

		key := Key(sig)
		profile, exists := res.Customers[key]
		if !exists {
			profile = newProfile(key, sig)
			res.Customers[key] = profile
		}
		fold(profile, sig, opts)
	}
	return res
}

func validate(sig models.RawSignal) (models.DropReason, bool) {
	switch {
	case !sig.Source.IsValid():
		return models.ReasonUnknownSource, false
	case pstrings.LowerTrim(sig.Name) == "":
		return models.ReasonMissingName, false
	case sig.EventDate.IsZero():
		return models.ReasonMissingEventDate, false
	}
	return "", true
}

func newProfile(key string, sig models.RawSignal) *models.UnifiedCustomer {
	date := models.CivilDate(sig.EventDate)
	return &models.UnifiedCustomer{
		IdentityKey: key,
		DisplayName: strings.Join(strings.Fields(sig.Name), " "),
		TotalSpend:  decimal.Zero,
		FirstSeen:   date,
		LastSeen:    date,
	}
}

func fold(p *models.UnifiedCustomer, sig models.RawSignal, opts Options) {
	date := models.CivilDate(sig.EventDate)

	p.VisitCount++
	p.FirstSeen = minTime(p.FirstSeen, date)
	p.LastSeen = maxTime(p.LastSeen, date)

	if p.Email == "" {
		p.Email = pstrings.NormalizeEmail(sig.Email)
	}
	if p.Phone == "" {
		p.Phone = normalizePhone(sig.Phone)
	}
	if !p.HasSource(sig.Source) {
		p.Sources = append(p.Sources, sig.Source)
	}

	if sig.Source == models.SourcePOS {
		if sig.Amount == nil {
			return
		}
		if !p.HasRealSpend {
			// first real amount replaces whatever was estimated so far
			p.TotalSpend = *sig.Amount
			p.HasRealSpend = true
			return
		}
		p.TotalSpend = p.TotalSpend.Add(*sig.Amount)
		return
	}

	p.EstimatedVisitDates = append(p.EstimatedVisitDates, date)
	if !p.HasRealSpend {
		p.TotalSpend = p.TotalSpend.Add(opts.FlatVisitEstimate)
	}
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
