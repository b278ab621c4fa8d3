package readstore

import (
	"context"

	"courtside/internal/infra"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &bookingReadStore{pool: pool}
}

const selectBookingViewSQL = `
SELECT id, renter_id, booking_date, status,
       total_price_cents, total_paid_cents, initial_deposit_cents,
       note, cancellation_reason, cancellation_time, version,
       created_at, updated_at
FROM bookings
WHERE id = $1`

const selectBookingLineViewsSQL = `
SELECT bl.id, bl.court_id, c.name, c.owner_id, bl.start_min, bl.end_min, bl.price_cents
FROM booking_lines bl
JOIN courts c ON c.id = bl.court_id
WHERE bl.booking_id = $1
ORDER BY bl.start_min, bl.id`

func (s *bookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := s.pool.QueryRow(ctx, selectBookingViewSQL, id).Scan(
		&view.ID, &view.RenterID, &view.Date, &view.Status,
		&view.TotalPriceCents, &view.TotalPaidCents, &view.InitialDepositCents,
		&view.Note, &view.CancellationReason, &view.CancellationTime, &view.Version,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	view.RemainingBalanceCents = view.TotalPriceCents - view.TotalPaidCents
	if view.RemainingBalanceCents < 0 {
		view.RemainingBalanceCents = 0
	}

	rows, err := s.pool.Query(ctx, selectBookingLineViewsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking line views", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line queries.BookingLineView
		if err := rows.Scan(&line.ID, &line.CourtID, &line.CourtName, &line.CourtOwnerID, &line.StartMin, &line.EndMin, &line.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking line view", err)
		}
		view.Lines = append(view.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking line views", err)
	}

	return &view, nil
}

const selectBookingsByRenterSQL = `
SELECT b.id, b.booking_date, b.status, b.total_price_cents, b.total_paid_cents,
       (SELECT count(*) FROM booking_lines bl WHERE bl.booking_id = b.id),
       b.created_at
FROM bookings b
WHERE b.renter_id = $1
ORDER BY b.booking_date DESC, b.created_at DESC`

func (s *bookingReadStore) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx, selectBookingsByRenterSQL, renterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by renter", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.Date, &item.Status, &item.TotalPriceCents, &item.TotalPaidCents, &item.LineCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings by renter", err)
	}
	return items, nil
}
