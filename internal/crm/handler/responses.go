package handler

import (
	"time"

	"barhub/internal/crm/models"
)

// SegmentsResponse is the HTTP response for GET /crm/segments.
type SegmentsResponse struct {
	Items      []CustomerResponse `json:"items"`
	Stats      models.Stats       `json:"stats"`
	Pagination models.Pagination  `json:"pagination"`
}

// CustomerResponse is one scored customer.
type CustomerResponse struct {
	IdentityKey      string          `json:"identity_key"`
	DisplayName      string          `json:"display_name"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Sources          []models.Source `json:"sources"`
	VisitCount       int             `json:"visit_count"`
	TotalSpend       float64         `json:"total_spend"`
	IsEstimatedSpend bool            `json:"is_estimated_spend"`
	FirstSeen        string          `json:"first_seen"`
	LastSeen         string          `json:"last_seen"`
	RecencyDays      int             `json:"recency_days"`
	AvgVisitRate     float64         `json:"avg_visit_rate"`
	RScore           int             `json:"r_score"`
	FScore           int             `json:"f_score"`
	MScore           int             `json:"m_score"`
	RFMTotal         int             `json:"rfm_total"`
	SegmentName      string          `json:"segment_name"`
	SegmentSlug      string          `json:"segment_slug"`
	SegmentColor     string          `json:"segment_color"`
	SegmentPriority  int             `json:"segment_priority"`
	SuggestedActions []string        `json:"suggested_actions"`
}

// CatalogResponse is the HTTP response for GET /crm/segments/catalog.
type CatalogResponse struct {
	Segments []models.Segment `json:"segments"`
}

// FromPage converts a domain page to an HTTP response.
func FromPage(page *models.Page) *SegmentsResponse {
	items := make([]CustomerResponse, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, fromCustomer(c))
	}
	return &SegmentsResponse{
		Items:      items,
		Stats:      page.Stats,
		Pagination: page.Pagination,
	}
}

func fromCustomer(c models.ScoredCustomer) CustomerResponse {
	return CustomerResponse{
		IdentityKey:      c.IdentityKey,
		DisplayName:      c.DisplayName,
		Email:            c.Email,
		Phone:            c.Phone,
		Sources:          c.Sources,
		VisitCount:       c.VisitCount,
		TotalSpend:       c.TotalSpend.Round(2).InexactFloat64(),
		IsEstimatedSpend: c.IsEstimatedSpend,
		FirstSeen:        c.FirstSeen.Format(time.DateOnly),
		LastSeen:         c.LastSeen.Format(time.DateOnly),
		RecencyDays:      c.RecencyDays,
		AvgVisitRate:     c.AvgVisitRate,
		RScore:           c.RScore,
		FScore:           c.FScore,
		MScore:           c.MScore,
		RFMTotal:         c.RFMTotal,
		SegmentName:      c.Segment.Name,
		SegmentSlug:      c.Segment.Slug,
		SegmentColor:     c.Segment.Color,
		SegmentPriority:  c.Segment.Priority,
		SuggestedActions: c.Segment.Actions,
	}
}
