package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"barhub/internal/crm/aggregate"
	"barhub/internal/crm/identity"
	"barhub/internal/crm/metrics"
	"barhub/internal/crm/models"
	"barhub/internal/crm/ports"
	"barhub/internal/crm/ranking"
	"barhub/internal/crm/scoring"
	"barhub/internal/crm/segment"
	id "barhub/pkg/domain"
	dErrors "barhub/pkg/domain-errors"
	"barhub/pkg/platform/sentinel"
	"barhub/pkg/requestcontext"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultMaxPageSize  = 100
)

var defaultFlatVisitEstimate = decimal.NewFromInt(100)

// Service fetches every source for a tenant, then resolves, aggregates,
// scores, classifies and ranks the whole population before paging it.
type Service struct {
	ticketing    ports.TicketingSource
	reservations ports.ReservationSource
	pos          ports.POSSource
	calibration  ports.RevenueCalibrationSource

	cache     ports.SnapshotCache
	publisher ports.DataQualityPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer

	flatEstimate decimal.Decimal
	fetchTimeout time.Duration
	maxPageSize  int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithSnapshotCache enables caching of computed populations.
func WithSnapshotCache(c ports.SnapshotCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithDataQualityPublisher(p ports.DataQualityPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithFlatVisitEstimate(v decimal.Decimal) Option {
	return func(s *Service) {
		s.flatEstimate = v
	}
}

func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.fetchTimeout = d
	}
}

func WithMaxPageSize(n int) Option {
	return func(s *Service) {
		s.maxPageSize = n
	}
}

// New constructs a Service. All four sources are required.
func New(
	ticketing ports.TicketingSource,
	reservations ports.ReservationSource,
	pos ports.POSSource,
	calibration ports.RevenueCalibrationSource,
	opts ...Option,
) (*Service, error) {
	if ticketing == nil || reservations == nil || pos == nil || calibration == nil {
		return nil, errors.New("ticketing, reservation, pos and calibration sources are required")
	}
	s := &Service{
		ticketing:    ticketing,
		reservations: reservations,
		pos:          pos,
		calibration:  calibration,
		flatEstimate: defaultFlatVisitEstimate,
		fetchTimeout: defaultFetchTimeout,
		maxPageSize:  defaultMaxPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("barhub/internal/crm/service")
	}
	if !s.flatEstimate.IsPositive() {
		return nil, fmt.Errorf("flat visit estimate must be positive, got %s", s.flatEstimate)
	}
	if s.fetchTimeout <= 0 || s.maxPageSize < 1 {
		return nil, errors.New("fetch timeout and max page size must be positive")
	}
	return s, nil
}

// Segment returns one page of the tenant's ranked customers. Stats always
// describe the full population; the segment filter narrows only the page.
func (s *Service) Segment(ctx context.Context, q models.Query) (*models.Page, error) {
	start := time.Now()
	if err := s.validateQuery(&q); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "crm.Segment", trace.WithAttributes(
		attribute.String("tenant_id", q.TenantID.String()),
		attribute.Int("page", q.Page),
		attribute.Int("page_size", q.PageSize),
		attribute.String("segment", q.Segment),
	))
	defer span.End()

	pop, err := s.Population(ctx, q.TenantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "segmentation failed")
		s.logger.ErrorContext(ctx, "segmentation failed",
			"request_id", requestcontext.RequestID(ctx),
			"tenant_id", q.TenantID,
			"error", err,
		)
		return nil, err
	}

	page := ranking.Paginate(*pop, q.Segment, q.Page, q.PageSize)
	s.metrics.ObserveSegmentation(time.Since(start))

	s.logger.InfoContext(ctx, "segmentation served",
		"request_id", requestcontext.RequestID(ctx),
		"tenant_id", q.TenantID,
		"population", page.Stats.Total,
		"segment", q.Segment,
		"page", q.Page,
		"items", len(page.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &page, nil
}

// Population returns the tenant's ranked, scored population as of the
// request day, from the snapshot cache when one is fresh.
func (s *Service) Population(ctx context.Context, tenantID id.TenantID) (*models.ScoredPopulation, error) {
	if tenantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "tenant is required")
	}
	today := requestcontext.Now(ctx)

	if s.cache != nil {
		pop, err := s.cache.Get(ctx, tenantID, today)
		switch {
		case err == nil:
			s.metrics.IncrementSnapshotCache("hit")
			return pop, nil
		case errors.Is(err, sentinel.ErrNotFound):
			s.metrics.IncrementSnapshotCache("miss")
		default:
			s.metrics.IncrementSnapshotCache("error")
			s.logger.WarnContext(ctx, "snapshot cache read failed",
				"request_id", requestcontext.RequestID(ctx),
				"tenant_id", tenantID,
				"error", err,
			)
		}
	}

	pop, err := s.compute(ctx, tenantID, today)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, tenantID, today, pop); err != nil {
			s.logger.WarnContext(ctx, "snapshot cache write failed",
				"request_id", requestcontext.RequestID(ctx),
				"tenant_id", tenantID,
				"error", err,
			)
		}
	}
	return pop, nil
}

func (s *Service) compute(ctx context.Context, tenantID id.TenantID, today time.Time) (*models.ScoredPopulation, error) {
	ctx, span := s.tracer.Start(ctx, "crm.compute")
	defer span.End()

	g, err := s.gather(ctx, tenantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "source fetch failed")
		return nil, err
	}

	res := identity.Resolve(g.signals(), identity.Options{FlatVisitEstimate: s.flatEstimate})
	s.reportDataQuality(ctx, tenantID, res.Report)

	aggregated := aggregate.All(res.Sorted(), today, aggregate.NewEstimator(g.calibration, s.flatEstimate))
	pop := scoring.Score(aggregated)
	if pop.ApproximateScores {
		s.logger.InfoContext(ctx, "population too small for reliable quintiles",
			"request_id", requestcontext.RequestID(ctx),
			"tenant_id", tenantID,
			"population", len(pop.Customers),
		)
	}
	segment.Assign(pop.Customers)
	pop.Customers = ranking.Rank(pop.Customers)
	pop.ComputedAt = today

	span.SetAttributes(
		attribute.Int("signals", g.count()),
		attribute.Int("customers", len(pop.Customers)),
		attribute.Int("dropped_signals", res.Report.Total()),
	)
	s.metrics.SetCustomersScored(len(pop.Customers))
	return &pop, nil
}

func (s *Service) reportDataQuality(ctx context.Context, tenantID id.TenantID, report models.DataQualityReport) {
	if report.Total() == 0 {
		return
	}
	for _, e := range report.Entries() {
		s.metrics.AddDroppedSignals(string(e.Source), string(e.Reason), e.Count)
	}
	s.logger.WarnContext(ctx, "signals dropped during identity resolution",
		"request_id", requestcontext.RequestID(ctx),
		"tenant_id", tenantID,
		"dropped", report.Total(),
		"entries", report.Entries(),
	)
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, tenantID, report); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish data quality event",
			"request_id", requestcontext.RequestID(ctx),
			"tenant_id", tenantID,
			"error", err,
		)
	}
}

func (s *Service) validateQuery(q *models.Query) error {
	if q.TenantID.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "tenant is required")
	}
	if q.Page < 1 {
		return dErrors.New(dErrors.CodeValidation, "page must be at least 1")
	}
	if q.PageSize < 1 || q.PageSize > s.maxPageSize {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("page_size must be between 1 and %d", s.maxPageSize))
	}
	if q.Segment != "" {
		seg, ok := segment.Lookup(q.Segment)
		if !ok {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown segment %q", q.Segment))
		}
		q.Segment = seg.Slug
	}
	return nil
}
