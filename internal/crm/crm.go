package crm

import (
	"log/slog"

	"barhub/internal/crm/handler"
	"barhub/internal/crm/ports"
	"barhub/internal/crm/service"
)

// Service exposes identity resolution and RFM segmentation.
type Service = service.Service

// Handler wires HTTP endpoints to the segmentation service.
type Handler = handler.Handler

// Sources is a single backend serving every read port. Both the Postgres
// and in-memory stores satisfy it.
type Sources interface {
	ports.TicketingSource
	ports.ReservationSource
	ports.POSSource
	ports.RevenueCalibrationSource
}

// NewService constructs the segmentation service over one backend.
func NewService(src Sources, opts ...service.Option) (*Service, error) {
	return service.New(src, src, src, src, opts...)
}

// NewHandler constructs an HTTP handler for tenant-facing CRM routes.
func NewHandler(s *Service, logger *slog.Logger, defaultPageSize int) *Handler {
	return handler.New(s, logger, defaultPageSize)
}
