package repository

import (
	"context"
	"time"

	"courtside/internal/domain/booking"
	"courtside/internal/domain/money"
	"courtside/internal/domain/schedule"
	"courtside/internal/infra"
	"courtside/internal/infra/db"
	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
)

type bookingRepository struct{}

func NewBookingRepository() commands.BookingRepository {
	return &bookingRepository{}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, renter_id, booking_date, status,
    total_price_cents, total_paid_cents, initial_deposit_cents,
    note, cancellation_reason, cancellation_time, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const insertBookingLineSQL = `
INSERT INTO booking_lines (
    id, booking_id, court_id, start_min, end_min, price_cents
) VALUES ($1, $2, $3, $4, $5, $6)`

func (r *bookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, insertBookingSQL,
		b.ID(), b.RenterID(), b.Date(), b.Status().String(),
		b.TotalPrice().Cents(), b.TotalPaid().Cents(), b.InitialDeposit().Cents(),
		b.Note(), b.CancellationReason(), b.CancellationTime(), b.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}

	return r.insertLines(ctx, tx, b)
}

const selectBookingSQL = `
SELECT id, renter_id, booking_date, status,
       total_price_cents, total_paid_cents, initial_deposit_cents,
       note, cancellation_reason, cancellation_time, version,
       created_at, updated_at
FROM bookings
WHERE id = $1`

const selectBookingLinesSQL = `
SELECT id, booking_id, court_id, start_min, end_min, price_cents
FROM booking_lines
WHERE booking_id = $1
ORDER BY start_min, id`

func (r *bookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	var (
		bID, renterID      uuid.UUID
		date               time.Time
		statusStr          string
		priceCents         int64
		paidCents          int64
		depositCents       int64
		note               string
		cancellationReason *string
		cancellationTime   *time.Time
		version            int64
		createdAt          time.Time
		updatedAt          time.Time
	)

	row := dbtx.QueryRow(ctx, selectBookingSQL, id)
	err := row.Scan(
		&bID, &renterID, &date, &statusStr,
		&priceCents, &paidCents, &depositCents,
		&note, &cancellationReason, &cancellationTime, &version,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status in storage", err)
	}

	lines, err := r.findLines(ctx, dbtx, bID)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		bID, renterID, date, status,
		money.MustNew(priceCents), money.MustNew(paidCents), money.MustNew(depositCents),
		note, cancellationReason, cancellationTime,
		lines, version, createdAt, updatedAt,
	), nil
}

const updateBookingSQL = `
UPDATE bookings
SET status = $1,
    total_price_cents = $2,
    total_paid_cents = $3,
    initial_deposit_cents = $4,
    note = $5,
    cancellation_reason = $6,
    cancellation_time = $7,
    version = version + 1,
    updated_at = now()
WHERE id = $8 AND version = $9`

const deleteBookingLinesSQL = `DELETE FROM booking_lines WHERE booking_id = $1`

// Update persists the aggregate guarded by the version the aggregate was
// loaded with. Zero affected rows means another writer got there first.
func (r *bookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingSQL,
		b.Status().String(),
		b.TotalPrice().Cents(), b.TotalPaid().Cents(), b.InitialDeposit().Cents(),
		b.Note(), b.CancellationReason(), b.CancellationTime(),
		b.ID(), b.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "booking was modified concurrently")
	}

	if _, err := tx.Exec(ctx, deleteBookingLinesSQL, b.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear booking lines", err)
	}
	return r.insertLines(ctx, tx, b)
}

func (r *bookingRepository) insertLines(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	for _, l := range b.Lines() {
		_, err := tx.Exec(ctx, insertBookingLineSQL,
			l.ID(), b.ID(), l.CourtID(),
			l.Start().Minutes(), l.End().Minutes(), l.Price().Cents(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking line", err)
		}
	}
	return nil
}

func (r *bookingRepository) findLines(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]*booking.Line, error) {
	rows, err := dbtx.Query(ctx, selectBookingLinesSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking lines", err)
	}
	defer rows.Close()

	var lines []*booking.Line
	for rows.Next() {
		var (
			lineID, bID, courtID uuid.UUID
			startMin, endMin     int
			priceCents           int64
		)
		if err := rows.Scan(&lineID, &bID, &courtID, &startMin, &endMin, &priceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking line", err)
		}

		start, err := schedule.NewTimeOfDay(startMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid line start in storage", err)
		}
		end, err := schedule.NewTimeOfDay(endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid line end in storage", err)
		}

		lines = append(lines, booking.ReconstructLine(lineID, bID, courtID, start, end, money.MustNew(priceCents)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking lines", err)
	}
	return lines, nil
}
