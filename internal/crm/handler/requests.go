package handler

import (
	"net/url"
	"strconv"
	"strings"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
	dErrors "barhub/pkg/domain-errors"
)

// SegmentsRequest is the parsed query string of GET /crm/segments.
type SegmentsRequest struct {
	Page     int
	PageSize int
	Segment  string
}

// ParseSegmentsRequest reads page, page_size and segment. Range checks
// against the configured maximum happen in the service.
func ParseSegmentsRequest(values url.Values, defaultPageSize int) (*SegmentsRequest, error) {
	req := &SegmentsRequest{Page: 1, PageSize: defaultPageSize}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "page must be an integer")
		}
		req.Page = page
	}
	if raw := strings.TrimSpace(values.Get("page_size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "page_size must be an integer")
		}
		req.PageSize = size
	}

	req.Segment = strings.TrimSpace(values.Get("segment"))
	if len(req.Segment) > 64 {
		return nil, dErrors.New(dErrors.CodeValidation, "segment must be at most 64 characters")
	}
	return req, nil
}

// ToQuery builds the service query for tenantID.
func (r *SegmentsRequest) ToQuery(tenantID id.TenantID) models.Query {
	return models.Query{
		TenantID: tenantID,
		Page:     r.Page,
		PageSize: r.PageSize,
		Segment:  r.Segment,
	}
}
