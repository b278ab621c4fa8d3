package readstore

import (
	"context"

	"courtside/internal/infra"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type catalogReadStore struct {
	pool *pgxpool.Pool
}

func NewCatalogReadStore(pool *pgxpool.Pool) queries.CatalogReadStore {
	return &catalogReadStore{pool: pool}
}

const selectCourtViewSQL = `
SELECT id, owner_id, name, slot_duration_min,
       cancellation_window_hours, refund_percent, min_deposit_percent,
       created_at, updated_at
FROM courts
WHERE id = $1`

func (s *catalogReadStore) FindCourtByID(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	var view queries.CourtView
	err := s.pool.QueryRow(ctx, selectCourtViewSQL, id).Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.SlotDurationMin,
		&view.CancellationWindowHours, &view.RefundPercent, &view.MinDepositPercent,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find court view", err)
	}
	return &view, nil
}

const selectTemplateViewsSQL = `
SELECT id, court_id, weekdays, start_min, end_min, price_per_slot_cents, status,
       created_at, updated_at
FROM weekly_templates
WHERE court_id = $1
ORDER BY start_min, id`

func (s *catalogReadStore) ListTemplatesByCourt(ctx context.Context, courtID uuid.UUID) ([]*queries.TemplateView, error) {
	rows, err := s.pool.Query(ctx, selectTemplateViewsSQL, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query template views", err)
	}
	defer rows.Close()

	views := make([]*queries.TemplateView, 0)
	for rows.Next() {
		var view queries.TemplateView
		if err := rows.Scan(&view.ID, &view.CourtID, &view.Weekdays, &view.StartMin, &view.EndMin, &view.PricePerSlotCents, &view.Status, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan template view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate template views", err)
	}
	return views, nil
}

const selectPromotionViewsSQL = `
SELECT id, court_id, description, kind, value, valid_from, valid_to,
       created_at, updated_at
FROM promotions
WHERE court_id = $1
ORDER BY created_at DESC, id DESC`

func (s *catalogReadStore) ListPromotionsByCourt(ctx context.Context, courtID uuid.UUID) ([]*queries.PromotionView, error) {
	rows, err := s.pool.Query(ctx, selectPromotionViewsSQL, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query promotion views", err)
	}
	defer rows.Close()

	views := make([]*queries.PromotionView, 0)
	for rows.Next() {
		var view queries.PromotionView
		if err := rows.Scan(&view.ID, &view.CourtID, &view.Description, &view.Kind, &view.Value, &view.ValidFrom, &view.ValidTo, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promotion views", err)
	}
	return views, nil
}
