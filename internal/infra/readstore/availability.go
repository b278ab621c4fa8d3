package readstore

import (
	"context"
	"time"

	"courtside/internal/domain/availability"
	"courtside/internal/domain/court"
	"courtside/internal/domain/money"
	"courtside/internal/domain/promotion"
	"courtside/internal/domain/schedule"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type availabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) queries.AvailabilityReadStore {
	return &availabilityReadStore{pool: pool}
}

const selectCourtPolicySQL = `
SELECT slot_duration_min, cancellation_window_hours, refund_percent, min_deposit_percent
FROM courts
WHERE id = $1`

const selectTemplatesForGridSQL = `
SELECT id, court_id, weekdays, start_min, end_min, price_per_slot_cents, status, created_at, updated_at
FROM weekly_templates
WHERE court_id = $1
ORDER BY start_min, id`

const selectPromotionsForGridSQL = `
SELECT id, court_id, description, kind, value, valid_from, valid_to, created_at, updated_at
FROM promotions
WHERE court_id = $1 AND valid_from <= $3 AND valid_to >= $2`

const selectBookedLinesForGridSQL = `
SELECT bl.booking_id, b.renter_id, bl.court_id, b.booking_date, bl.start_min, bl.end_min
FROM booking_lines bl
JOIN bookings b ON b.id = bl.booking_id
WHERE bl.court_id = $1
  AND b.booking_date BETWEEN $2 AND $3
  AND b.status <> 'cancelled'`

// FetchSnapshot reads the court policy, templates, promotions and
// occupied lines inside one repeatable-read transaction, so the grid is
// computed from a single consistent point in time.
func (s *availabilityReadStore) FetchSnapshot(ctx context.Context, courtID uuid.UUID, from, to time.Time) (*queries.AvailabilitySnapshot, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin snapshot transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var policy court.Policy
	err = tx.QueryRow(ctx, selectCourtPolicySQL, courtID).Scan(
		&policy.SlotDurationMin,
		&policy.CancellationWindowHours,
		&policy.RefundPercent,
		&policy.MinDepositPercent,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load court policy", err)
	}

	templates, err := s.loadTemplates(ctx, tx, courtID)
	if err != nil {
		return nil, err
	}
	promotions, err := s.loadPromotions(ctx, tx, courtID, from, to)
	if err != nil {
		return nil, err
	}
	bookedLines, err := s.loadBookedLines(ctx, tx, courtID, from, to)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit snapshot transaction", err)
	}

	return &queries.AvailabilitySnapshot{
		Policy:      policy,
		Templates:   templates,
		Promotions:  promotions,
		BookedLines: bookedLines,
	}, nil
}

func (s *availabilityReadStore) loadTemplates(ctx context.Context, tx pgx.Tx, courtID uuid.UUID) ([]*schedule.WeeklyTemplate, error) {
	rows, err := tx.Query(ctx, selectTemplatesForGridSQL, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query templates", err)
	}
	defer rows.Close()

	var templates []*schedule.WeeklyTemplate
	for rows.Next() {
		var (
			id, cID              uuid.UUID
			weekdays             []int
			startMin, endMin     int
			priceCents           int64
			statusStr            string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &cID, &weekdays, &startMin, &endMin, &priceCents, &statusStr, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan template", err)
		}

		t, err := rehydrateTemplate(id, cID, weekdays, startMin, endMin, priceCents, statusStr, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate templates", err)
	}
	return templates, nil
}

func rehydrateTemplate(
	id, courtID uuid.UUID,
	weekdays []int,
	startMin, endMin int,
	priceCents int64,
	statusStr string,
	createdAt, updatedAt time.Time,
) (*schedule.WeeklyTemplate, error) {
	set, err := schedule.NewWeekdaySet(weekdays...)
	if err != nil {
		return nil, errs.Wrap(err, "invalid weekday set in storage")
	}
	start, err := schedule.NewTimeOfDay(startMin)
	if err != nil {
		return nil, errs.Wrap(err, "invalid template start in storage")
	}
	end, err := schedule.NewTimeOfDay(endMin)
	if err != nil {
		return nil, errs.Wrap(err, "invalid template end in storage")
	}
	status, err := schedule.NewTemplateStatus(statusStr)
	if err != nil {
		return nil, errs.Wrap(err, "invalid template status in storage")
	}
	return schedule.ReconstructWeeklyTemplate(id, courtID, set, start, end, money.MustNew(priceCents), status, createdAt, updatedAt), nil
}

func (s *availabilityReadStore) loadPromotions(ctx context.Context, tx pgx.Tx, courtID uuid.UUID, from, to time.Time) ([]*promotion.Promotion, error) {
	rows, err := tx.Query(ctx, selectPromotionsForGridSQL, courtID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query promotions", err)
	}
	defer rows.Close()

	var promotions []*promotion.Promotion
	for rows.Next() {
		var (
			id, cID              uuid.UUID
			description, kindStr string
			value                float64
			validFrom, validTo   time.Time
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &cID, &description, &kindStr, &value, &validFrom, &validTo, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion", err)
		}

		kind, err := promotion.NewKind(kindStr)
		if err != nil {
			return nil, errs.Wrap(err, "invalid promotion kind in storage")
		}
		promotions = append(promotions, promotion.ReconstructPromotion(id, cID, description, kind, value, validFrom, validTo, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promotions", err)
	}
	return promotions, nil
}

func (s *availabilityReadStore) loadBookedLines(ctx context.Context, tx pgx.Tx, courtID uuid.UUID, from, to time.Time) ([]availability.BookedLine, error) {
	rows, err := tx.Query(ctx, selectBookedLinesForGridSQL, courtID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked lines", err)
	}
	defer rows.Close()

	var lines []availability.BookedLine
	for rows.Next() {
		var (
			bookingID, renterID, cID uuid.UUID
			date                     time.Time
			startMin, endMin         int
		)
		if err := rows.Scan(&bookingID, &renterID, &cID, &date, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked line", err)
		}

		start, err := schedule.NewTimeOfDay(startMin)
		if err != nil {
			return nil, errs.Wrap(err, "invalid line start in storage")
		}
		end, err := schedule.NewTimeOfDay(endMin)
		if err != nil {
			return nil, errs.Wrap(err, "invalid line end in storage")
		}

		lines = append(lines, availability.BookedLine{
			BookingID: bookingID,
			RenterID:  renterID,
			CourtID:   cID,
			Date:      date,
			Start:     start,
			End:       end,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked lines", err)
	}
	return lines, nil
}
