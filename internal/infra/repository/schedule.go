package repository

import (
	"context"
	"time"

	"courtside/internal/domain/money"
	"courtside/internal/domain/schedule"
	"courtside/internal/infra"
	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type templateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) commands.TemplateRepository {
	return &templateRepository{pool: pool}
}

const insertTemplateSQL = `
INSERT INTO weekly_templates (
    id, court_id, weekdays, start_min, end_min, price_per_slot_cents, status
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *templateRepository) Create(ctx context.Context, t *schedule.WeeklyTemplate) error {
	_, err := r.pool.Exec(ctx, insertTemplateSQL,
		t.ID(), t.CourtID(), t.Weekdays().Days(),
		t.Start().Minutes(), t.End().Minutes(),
		t.PricePerSlot().Cents(), t.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert weekly template", err)
	}
	return nil
}

const selectTemplatesByCourtSQL = `
SELECT id, court_id, weekdays, start_min, end_min, price_per_slot_cents, status,
       created_at, updated_at
FROM weekly_templates
WHERE court_id = $1
ORDER BY start_min, id`

func (r *templateRepository) ListByCourt(ctx context.Context, courtID uuid.UUID) ([]*schedule.WeeklyTemplate, error) {
	rows, err := r.pool.Query(ctx, selectTemplatesByCourtSQL, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query weekly templates", err)
	}
	defer rows.Close()

	var templates []*schedule.WeeklyTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate weekly templates", err)
	}
	return templates, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*schedule.WeeklyTemplate, error) {
	var (
		id, courtID          uuid.UUID
		weekdays             []int
		startMin, endMin     int
		priceCents           int64
		statusStr            string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &courtID, &weekdays, &startMin, &endMin, &priceCents, &statusStr, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan weekly template", err)
	}

	set, err := schedule.NewWeekdaySet(weekdays...)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid weekday set in storage", err)
	}
	start, err := schedule.NewTimeOfDay(startMin)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid template start in storage", err)
	}
	end, err := schedule.NewTimeOfDay(endMin)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid template end in storage", err)
	}
	status, err := schedule.NewTemplateStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid template status in storage", err)
	}

	return schedule.ReconstructWeeklyTemplate(
		id, courtID, set, start, end,
		money.MustNew(priceCents), status,
		createdAt, updatedAt,
	), nil
}
