// Package ports declares the collaborators the segmentation service reads from.
package ports

import (
	"context"
	"time"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
)

//go:generate mockgen -source=sources.go -destination=../service/mocks/mocks.go -package=mocks

// TicketingSource yields one signal per approved or completed event participant.
type TicketingSource interface {
	FetchTicketingSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error)
}

// ReservationSource yields one signal per seated or confirmed reservation.
type ReservationSource interface {
	FetchReservationSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error)
}

// POSSource yields one signal per named customer per business day, carrying
// the day's summed payment amount. Placeholder names are already removed.
type POSSource interface {
	FetchPOSSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error)
}

// RevenueCalibrationSource yields the tenant's average ticket per business day.
type RevenueCalibrationSource interface {
	FetchRevenueCalibration(ctx context.Context, tenantID id.TenantID) (models.Calibration, error)
}

// SnapshotCache holds a tenant's ranked population for a short time.
// Get returns sentinel.ErrNotFound on a miss.
type SnapshotCache interface {
	Get(ctx context.Context, tenantID id.TenantID, asOf time.Time) (*models.ScoredPopulation, error)
	Put(ctx context.Context, tenantID id.TenantID, asOf time.Time, pop *models.ScoredPopulation) error
}

// DataQualityPublisher reports skipped signals to downstream consumers.
type DataQualityPublisher interface {
	Publish(ctx context.Context, tenantID id.TenantID, report models.DataQualityReport) error
}
