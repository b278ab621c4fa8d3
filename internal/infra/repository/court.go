package repository

import (
	"context"
	"time"

	"courtside/internal/domain/court"
	"courtside/internal/infra"
	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type courtRepository struct {
	pool *pgxpool.Pool
}

func NewCourtRepository(pool *pgxpool.Pool) commands.CourtRepository {
	return &courtRepository{pool: pool}
}

const insertCourtSQL = `
INSERT INTO courts (
    id, owner_id, name, slot_duration_min,
    cancellation_window_hours, refund_percent, min_deposit_percent
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *courtRepository) Create(ctx context.Context, c *court.Court) error {
	_, err := r.pool.Exec(ctx, insertCourtSQL,
		c.ID(), c.OwnerID(), c.Name(), c.SlotDurationMin(),
		c.CancellationWindowHours(), c.RefundPercent(), c.MinDepositPercent(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert court", err)
	}
	return nil
}

const selectCourtSQL = `
SELECT id, owner_id, name, slot_duration_min,
       cancellation_window_hours, refund_percent, min_deposit_percent,
       created_at, updated_at
FROM courts
WHERE id = $1`

func (r *courtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	var (
		cID, ownerID            uuid.UUID
		name                    string
		slotDurationMin         int
		cancellationWindowHours int
		refundPercent           float64
		minDepositPercent       float64
		createdAt, updatedAt    time.Time
	)

	err := r.pool.QueryRow(ctx, selectCourtSQL, id).Scan(
		&cID, &ownerID, &name, &slotDurationMin,
		&cancellationWindowHours, &refundPercent, &minDepositPercent,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find court", err)
	}

	return court.ReconstructCourt(
		cID, ownerID, name,
		slotDurationMin, cancellationWindowHours,
		refundPercent, minDepositPercent,
		createdAt, updatedAt,
	), nil
}
