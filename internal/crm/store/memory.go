package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
)

// Participant is an event ticketing participant row.
type Participant struct {
	Name      string
	Email     string
	Phone     string
	Status    string
	EventDate time.Time
}

// Reservation is a table reservation row.
type Reservation struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Status          string
	ReservationDate time.Time
}

// DailyRevenue is a business day's revenue and distinct customer count.
type DailyRevenue struct {
	BusinessDate  time.Time
	Revenue       decimal.Decimal
	CustomerCount int
}

var (
	ticketingStatuses   = []string{"approved", "completed"}
	reservationStatuses = []string{"seated", "confirmed"}
)

type tenantData struct {
	participants []Participant
	reservations []Reservation
	payments     []POSPayment
	revenue      []DailyRevenue
}

// MemorySource is an in-memory implementation of every source port, applying
// the same status filters and point-of-sale collapsing as PostgresSource.
type MemorySource struct {
	mu      sync.RWMutex
	tenants map[id.TenantID]*tenantData
}

// NewMemorySource returns an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{tenants: make(map[id.TenantID]*tenantData)}
}

func (m *MemorySource) tenant(tenantID id.TenantID) *tenantData {
	t, ok := m.tenants[tenantID]
	if !ok {
		t = &tenantData{}
		m.tenants[tenantID] = t
	}
	return t
}

func (m *MemorySource) AddParticipants(tenantID id.TenantID, rows ...Participant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.tenant(tenantID)
	t.participants = append(t.participants, rows...)
}

func (m *MemorySource) AddReservations(tenantID id.TenantID, rows ...Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.tenant(tenantID)
	t.reservations = append(t.reservations, rows...)
}

func (m *MemorySource) AddPayments(tenantID id.TenantID, rows ...POSPayment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.tenant(tenantID)
	t.payments = append(t.payments, rows...)
}

func (m *MemorySource) AddDailyRevenue(tenantID id.TenantID, rows ...DailyRevenue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.tenant(tenantID)
	t.revenue = append(t.revenue, rows...)
}

func (m *MemorySource) FetchTicketingSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.RawSignal
	if t, ok := m.tenants[tenantID]; ok {
		for _, p := range t.participants {
			if !slices.Contains(ticketingStatuses, p.Status) {
				continue
			}
			out = append(out, models.RawSignal{
				Source:    models.SourceTicketing,
				Name:      p.Name,
				Email:     p.Email,
				Phone:     p.Phone,
				EventDate: civilOrZero(p.EventDate),
				Status:    p.Status,
			})
		}
	}
	return out, nil
}

func (m *MemorySource) FetchReservationSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.RawSignal
	if t, ok := m.tenants[tenantID]; ok {
		for _, r := range t.reservations {
			if !slices.Contains(reservationStatuses, r.Status) {
				continue
			}
			out = append(out, models.RawSignal{
				Source:    models.SourceReservation,
				Name:      r.CustomerName,
				Email:     r.CustomerEmail,
				Phone:     r.CustomerPhone,
				EventDate: civilOrZero(r.ReservationDate),
				Status:    r.Status,
			})
		}
	}
	return out, nil
}

func (m *MemorySource) FetchPOSSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return nil, nil
	}
	return CollapsePOSDaily(t.payments), nil
}

func (m *MemorySource) FetchRevenueCalibration(ctx context.Context, tenantID id.TenantID) (models.Calibration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	cal := models.Calibration{}
	if t, ok := m.tenants[tenantID]; ok {
		for _, r := range t.revenue {
			if avg, ok := AverageTicket(r.Revenue, r.CustomerCount); ok {
				cal[models.DateKey(r.BusinessDate)] = avg
			}
		}
	}
	return cal, nil
}

// AverageTicket divides a day's revenue by its customer count, rounded to cents.
// Days with no customers have no average.
func AverageTicket(revenue decimal.Decimal, customers int) (decimal.Decimal, bool) {
	if customers <= 0 {
		return decimal.Zero, false
	}
	return revenue.Div(decimal.NewFromInt(int64(customers))).Round(2), true
}

func civilOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return models.CivilDate(t)
}
