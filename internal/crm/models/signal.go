package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which venue subsystem produced a signal.
type Source string

const (
	SourceTicketing   Source = "ticketing"
	SourceReservation Source = "reservation"
	SourcePOS         Source = "pos"
)

// AllSources lists sources in fold precedence order.
func AllSources() []Source {
	return []Source{SourceTicketing, SourceReservation, SourcePOS}
}

// IsValid reports whether s is a known source.
func (s Source) IsValid() bool {
	switch s {
	case SourceTicketing, SourceReservation, SourcePOS:
		return true
	}
	return false
}

// Precedence orders sources for folding; point-of-sale always folds last.
func (s Source) Precedence() int {
	switch s {
	case SourceTicketing:
		return 0
	case SourceReservation:
		return 1
	case SourcePOS:
		return 2
	default:
		return 3
	}
}

func (s Source) String() string {
	return string(s)
}

// RawSignal is one customer-bearing record from a source, in the common shape
// every adapter emits. Never persisted.
type RawSignal struct {
	Source    Source
	Name      string
	Email     string
	Phone     string
	Amount    *decimal.Decimal // point-of-sale only; nil elsewhere
	EventDate time.Time        // civil date at UTC midnight
	Status    string
}

// CivilDate truncates t to midnight UTC of its calendar date.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats the civil date of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Calibration maps a business date (DateKey) to the tenant's average ticket that day.
type Calibration map[string]decimal.Decimal

// Lookup returns the positive average ticket recorded for the civil date of t.
func (c Calibration) Lookup(t time.Time) (decimal.Decimal, bool) {
	v, ok := c[DateKey(t)]
	if !ok || !v.IsPositive() {
		return decimal.Zero, false
	}
	return v, true
}
