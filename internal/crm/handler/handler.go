package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"barhub/internal/crm/models"
	"barhub/internal/crm/segment"
	dErrors "barhub/pkg/domain-errors"
	"barhub/pkg/platform/httputil"
	"barhub/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for segmentation queries.
type Service interface {
	Segment(ctx context.Context, q models.Query) (*models.Page, error)
}

// Handler wires CRM endpoints to the segmentation service.
type Handler struct {
	service         Service
	logger          *slog.Logger
	defaultPageSize int
}

// New constructs a CRM handler with its dependencies.
func New(service Service, logger *slog.Logger, defaultPageSize int) *Handler {
	return &Handler{
		service:         service,
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// Register mounts CRM endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/crm/segments", h.HandleSegments)
	r.Get("/crm/segments/catalog", h.HandleCatalog)
}

// HandleSegments handles GET /crm/segments requests.
func (h *Handler) HandleSegments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	tenantID := requestcontext.TenantID(ctx)
	if tenantID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, err := ParseSegmentsRequest(r.URL.Query(), h.defaultPageSize)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid segments request",
			"request_id", requestID,
			"tenant_id", tenantID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.Segment(ctx, req.ToQuery(tenantID))
	if err != nil {
		h.logger.ErrorContext(ctx, "segments query failed",
			"request_id", requestID,
			"tenant_id", tenantID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "segments listed",
		"request_id", requestID,
		"tenant_id", tenantID,
		"segment", req.Segment,
		"total", page.Pagination.Total,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromPage(page))
}

// HandleCatalog handles GET /crm/segments/catalog requests.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, CatalogResponse{Segments: segment.Catalog()})
}
