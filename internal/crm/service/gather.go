package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
	dErrors "barhub/pkg/domain-errors"
)

// gathered holds one complete fetch of every source for a tenant.
type gathered struct {
	ticketing    []models.RawSignal
	reservations []models.RawSignal
	pos          []models.RawSignal
	calibration  models.Calibration
}

func (g *gathered) signals() []models.RawSignal {
	out := make([]models.RawSignal, 0, g.count())
	out = append(out, g.ticketing...)
	out = append(out, g.reservations...)
	return append(out, g.pos...)
}

func (g *gathered) count() int {
	return len(g.ticketing) + len(g.reservations) + len(g.pos)
}

// gather fetches all sources in parallel. The first failure cancels the
// rest and fails the whole run; there is no partial result.
func (s *Service) gather(ctx context.Context, tenantID id.TenantID) (*gathered, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	out := &gathered{}

	g.Go(fetchInto(ctx, s, "ticketing", &out.ticketing, func(ctx context.Context) ([]models.RawSignal, error) {
		return s.ticketing.FetchTicketingSignals(ctx, tenantID)
	}))
	g.Go(fetchInto(ctx, s, "reservation", &out.reservations, func(ctx context.Context) ([]models.RawSignal, error) {
		return s.reservations.FetchReservationSignals(ctx, tenantID)
	}))
	g.Go(fetchInto(ctx, s, "pos", &out.pos, func(ctx context.Context) ([]models.RawSignal, error) {
		return s.pos.FetchPOSSignals(ctx, tenantID)
	}))
	g.Go(fetchInto(ctx, s, "calibration", &out.calibration, func(ctx context.Context) (models.Calibration, error) {
		return s.calibration.FetchRevenueCalibration(ctx, tenantID)
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func fetchInto[T any](ctx context.Context, s *Service, source string, dst *T, fetch func(context.Context) (T, error)) func() error {
	return func() error {
		start := time.Now()
		v, err := fetch(ctx)
		s.metrics.ObserveSourceFetch(source, time.Since(start))

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return dErrors.Wrap(err, dErrors.CodeTimeout, fmt.Sprintf("%s source timed out", source))
			}
			return dErrors.Wrap(err, dErrors.CodeUpstream, fmt.Sprintf("%s source unavailable", source))
		}
		*dst = v
		return nil
	}
}
