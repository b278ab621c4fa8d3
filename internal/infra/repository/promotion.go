package repository

import (
	"context"

	"courtside/internal/domain/promotion"
	"courtside/internal/infra"
	"courtside/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type promotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) commands.PromotionRepository {
	return &promotionRepository{pool: pool}
}

const insertPromotionSQL = `
INSERT INTO promotions (
    id, court_id, description, kind, value, valid_from, valid_to
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *promotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	_, err := r.pool.Exec(ctx, insertPromotionSQL,
		p.ID(), p.CourtID(), p.Description(), p.Kind().String(), p.Value(),
		p.ValidFrom(), p.ValidTo(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert promotion", err)
	}
	return nil
}
