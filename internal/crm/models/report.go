package models

import (
	"cmp"
	"slices"
)

// DropReason explains why a signal was skipped during identity resolution.
type DropReason string

const (
	ReasonMissingName      DropReason = "missing_name"
	ReasonMissingEventDate DropReason = "missing_event_date"
	ReasonUnknownSource    DropReason = "unknown_source"
)

// DataQualityEntry is one (source, reason) drop count.
type DataQualityEntry struct {
	Source Source     `json:"source"`
	Reason DropReason `json:"reason"`
	Count  int        `json:"count"`
}

// DataQualityReport counts skipped signals. The zero value is ready to use.
type DataQualityReport struct {
	counts map[Source]map[DropReason]int
}

// Add records one dropped signal.
func (r *DataQualityReport) Add(source Source, reason DropReason) {
	if r.counts == nil {
		r.counts = make(map[Source]map[DropReason]int)
	}
	if r.counts[source] == nil {
		r.counts[source] = make(map[DropReason]int)
	}
	r.counts[source][reason]++
}

// Count returns the drops for one (source, reason) pair.
func (r DataQualityReport) Count(source Source, reason DropReason) int {
	return r.counts[source][reason]
}

// Total returns the number of dropped signals across all sources.
func (r DataQualityReport) Total() int {
	total := 0
	for _, byReason := range r.counts {
		for _, n := range byReason {
			total += n
		}
	}
	return total
}

// Entries flattens the report, ordered by source then reason.
func (r DataQualityReport) Entries() []DataQualityEntry {
	var out []DataQualityEntry
	for source, byReason := range r.counts {
		for reason, n := range byReason {
			out = append(out, DataQualityEntry{Source: source, Reason: reason, Count: n})
		}
	}
	slices.SortFunc(out, func(a, b DataQualityEntry) int {
		if c := cmp.Compare(a.Source.Precedence(), b.Source.Precedence()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return cmp.Compare(a.Reason, b.Reason)
	})
	return out
}
