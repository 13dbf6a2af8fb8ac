package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
)

const (
	ticketingQuery = `
		SELECT name, email, phone, status, event_date
		FROM ticketing_participants
		WHERE tenant_id = $1 AND status = ANY($2)`

	reservationQuery = `
		SELECT customer_name, customer_email, customer_phone, status, reservation_date
		FROM reservations
		WHERE tenant_id = $1 AND status = ANY($2)`

	posQuery = `
		SELECT customer_name, customer_email, customer_phone, amount, business_date
		FROM pos_payments
		WHERE tenant_id = $1 AND customer_name IS NOT NULL AND btrim(customer_name) <> ''`

	revenueQuery = `
		SELECT business_date, revenue, customer_count
		FROM daily_revenue
		WHERE tenant_id = $1 AND customer_count > 0`
)

// PostgresSource reads signals from the venue platform tables.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgres constructs a PostgresSource over db.
func NewPostgres(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) FetchTicketingSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error) {
	rows, err := s.db.QueryContext(ctx, ticketingQuery, tenantID.String(), pq.Array(ticketingStatuses))
	if err != nil {
		return nil, fmt.Errorf("query ticketing participants: %w", err)
	}
	defer rows.Close()

	var out []models.RawSignal
	for rows.Next() {
		var name, email, phone sql.NullString
		var status string
		var eventDate sql.NullTime
		if err := rows.Scan(&name, &email, &phone, &status, &eventDate); err != nil {
			return nil, fmt.Errorf("scan ticketing participant: %w", err)
		}
		out = append(out, models.RawSignal{
			Source:    models.SourceTicketing,
			Name:      name.String,
			Email:     email.String,
			Phone:     phone.String,
			EventDate: nullDate(eventDate),
			Status:    status,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticketing participants: %w", err)
	}
	return out, nil
}

func (s *PostgresSource) FetchReservationSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error) {
	rows, err := s.db.QueryContext(ctx, reservationQuery, tenantID.String(), pq.Array(reservationStatuses))
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var out []models.RawSignal
	for rows.Next() {
		var name, email, phone sql.NullString
		var status string
		var date sql.NullTime
		if err := rows.Scan(&name, &email, &phone, &status, &date); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, models.RawSignal{
			Source:    models.SourceReservation,
			Name:      name.String,
			Email:     email.String,
			Phone:     phone.String,
			EventDate: nullDate(date),
			Status:    status,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations: %w", err)
	}
	return out, nil
}

func (s *PostgresSource) FetchPOSSignals(ctx context.Context, tenantID id.TenantID) ([]models.RawSignal, error) {
	rows, err := s.db.QueryContext(ctx, posQuery, tenantID.String())
	if err != nil {
		return nil, fmt.Errorf("query pos payments: %w", err)
	}
	defer rows.Close()

	var payments []POSPayment
	for rows.Next() {
		var name, email, phone sql.NullString
		var p POSPayment
		if err := rows.Scan(&name, &email, &phone, &p.Amount, &p.BusinessDate); err != nil {
			return nil, fmt.Errorf("scan pos payment: %w", err)
		}
		p.CustomerName = name.String
		p.CustomerEmail = email.String
		p.CustomerPhone = phone.String
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pos payments: %w", err)
	}
	return CollapsePOSDaily(payments), nil
}

func (s *PostgresSource) FetchRevenueCalibration(ctx context.Context, tenantID id.TenantID) (models.Calibration, error) {
	rows, err := s.db.QueryContext(ctx, revenueQuery, tenantID.String())
	if err != nil {
		return nil, fmt.Errorf("query daily revenue: %w", err)
	}
	defer rows.Close()

	cal := models.Calibration{}
	for rows.Next() {
		var date time.Time
		var revenue decimal.Decimal
		var customers int
		if err := rows.Scan(&date, &revenue, &customers); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		if avg, ok := AverageTicket(revenue, customers); ok {
			cal[models.DateKey(date)] = avg
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily revenue: %w", err)
	}
	return cal, nil
}

func nullDate(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return models.CivilDate(t.Time)
}
