package models

import id "barhub/pkg/domain"

// Query selects one page of a tenant's segmented customers.
// Segment optionally filters by segment name or slug.
type Query struct {
	TenantID id.TenantID
	Page     int
	PageSize int
	Segment  string
}

// SegmentCount is the population count for one segment.
type SegmentCount struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats describe the whole, unfiltered population.
type Stats struct {
	Total             int            `json:"total"`
	PerSegment        []SegmentCount `json:"per_segment"`
	EstimatedSpend    int            `json:"estimated_spend"`
	ApproximateScores bool           `json:"approximate_scores"`
}

// Pagination describes the filtered result set.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// Page is the result of a segmentation query.
type Page struct {
	Items      []ScoredCustomer
	Stats      Stats
	Pagination Pagination
}
