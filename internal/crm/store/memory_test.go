package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"barhub/internal/crm/identity"
	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
)

type MemorySourceSuite struct {
	suite.Suite
	ctx    context.Context
	tenant id.TenantID
	source *MemorySource
}

func TestMemorySourceSuite(t *testing.T) {
	suite.Run(t, new(MemorySourceSuite))
}

func (s *MemorySourceSuite) SetupTest() {
	s.ctx = context.Background()
	s.tenant = id.TenantID(uuid.New())
	s.source = NewMemorySource()
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func (s *MemorySourceSuite) TestTicketingFiltersStatuses() {
	s.source.AddParticipants(s.tenant,
		Participant{Name: "Ana", Email: "ana@x.com", Status: "approved", EventDate: day(1)},
		Participant{Name: "Bia", Status: "completed", EventDate: day(2)},
		Participant{Name: "Caio", Status: "refunded", EventDate: day(3)},
	)

	signals, err := s.source.FetchTicketingSignals(s.ctx, s.tenant)
	s.Require().NoError(err)
	s.Len(signals, 2)
	for _, sig := range signals {
		s.Equal(models.SourceTicketing, sig.Source)
		s.Nil(sig.Amount)
	}
}

func (s *MemorySourceSuite) TestReservationsFilterStatuses() {
	s.source.AddReservations(s.tenant,
		Reservation{CustomerName: "Ana", Status: "seated", ReservationDate: day(1)},
		Reservation{CustomerName: "Bia", Status: "confirmed", ReservationDate: day(2)},
		Reservation{CustomerName: "Caio", Status: "no_show", ReservationDate: day(3)},
		Reservation{CustomerName: "Dora", Status: "cancelled", ReservationDate: day(3)},
	)

	signals, err := s.source.FetchReservationSignals(s.ctx, s.tenant)
	s.Require().NoError(err)
	s.Len(signals, 2)
}

func (s *MemorySourceSuite) TestTenantsAreIsolated() {
	other := id.TenantID(uuid.New())
	s.source.AddParticipants(other, Participant{Name: "Ana", Status: "approved", EventDate: day(1)})

	signals, err := s.source.FetchTicketingSignals(s.ctx, s.tenant)
	s.Require().NoError(err)
	s.Empty(signals)
}

func (s *MemorySourceSuite) TestPOSPlaceholderNeverReachesResolver() {
	s.source.AddPayments(s.tenant, POSPayment{
		CustomerName: "MESA",
		Amount:       decimal.NewFromInt(80),
		BusinessDate: day(1),
	})

	signals, err := s.source.FetchPOSSignals(s.ctx, s.tenant)
	s.Require().NoError(err)
	s.Empty(signals)

	res := identity.Resolve(signals, identity.Options{FlatVisitEstimate: decimal.NewFromInt(100)})
	s.Empty(res.Customers)
	s.Zero(res.Report.Total())
}

func (s *MemorySourceSuite) TestCalibrationSkipsDaysWithoutCustomers() {
	s.source.AddDailyRevenue(s.tenant,
		DailyRevenue{BusinessDate: day(1), Revenue: decimal.NewFromInt(1000), CustomerCount: 12},
		DailyRevenue{BusinessDate: day(2), Revenue: decimal.NewFromInt(500), CustomerCount: 0},
	)

	cal, err := s.source.FetchRevenueCalibration(s.ctx, s.tenant)
	s.Require().NoError(err)
	s.Len(cal, 1)
	s.Equal("83.33", cal["2024-03-01"].StringFixed(2))
}

func (s *MemorySourceSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.source.FetchPOSSignals(ctx, s.tenant)
	s.ErrorIs(err, context.Canceled)
}

func TestCollapsePOSDaily(t *testing.T) {
	payments := []POSPayment{
		{CustomerName: "Ana", CustomerEmail: "ana@x.com", Amount: decimal.RequireFromString("30.10"), BusinessDate: day(1)},
		{CustomerName: " ana ", CustomerEmail: "ANA@x.com", Amount: decimal.RequireFromString("12.40"), BusinessDate: day(1).Add(20 * time.Hour)},
		{CustomerName: "Ana", CustomerEmail: "ana@x.com", Amount: decimal.NewFromInt(5), BusinessDate: day(2)},
		{CustomerName: "Mesa 7", Amount: decimal.NewFromInt(99), BusinessDate: day(1)},
		{CustomerName: "Bruno", Amount: decimal.NewFromInt(20), BusinessDate: day(1)},
	}

	signals := CollapsePOSDaily(payments)

	require.Len(t, signals, 3)
	assert.Equal(t, "Ana", signals[0].Name)
	assert.Equal(t, day(1), signals[0].EventDate)
	assert.Equal(t, "42.5", signals[0].Amount.String())
	assert.Equal(t, "Bruno", signals[1].Name)
	assert.Equal(t, day(2), signals[2].EventDate)
	assert.Equal(t, "5", signals[2].Amount.String())
	for _, sig := range signals {
		assert.Equal(t, models.SourcePOS, sig.Source)
	}
}

func TestAverageTicket(t *testing.T) {
	avg, ok := AverageTicket(decimal.NewFromInt(250), 4)
	assert.True(t, ok)
	assert.Equal(t, "62.5", avg.String())

	_, ok = AverageTicket(decimal.NewFromInt(250), 0)
	assert.False(t, ok)
}
