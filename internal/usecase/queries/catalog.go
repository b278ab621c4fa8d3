package queries

import (
	"context"

	"courtside/internal/infra"
	"courtside/internal/pkg/errs"

	"github.com/google/uuid"
)

// Catalog queries back the owner-facing listings of a court's published
// templates and promotions.

type CatalogReadStore interface {
	FindCourtByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListTemplatesByCourt(ctx context.Context, courtID uuid.UUID) ([]*TemplateView, error)
	ListPromotionsByCourt(ctx context.Context, courtID uuid.UUID) ([]*PromotionView, error)
}

type CatalogQueries interface {
	GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListTemplates(ctx context.Context, courtID uuid.UUID) ([]*TemplateView, error)
	ListPromotions(ctx context.Context, courtID uuid.UUID) ([]*PromotionView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	view, err := q.store.FindCourtByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Wrap(err, "failed to find court")
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListTemplates(ctx context.Context, courtID uuid.UUID) ([]*TemplateView, error) {
	if _, err := q.GetCourt(ctx, courtID); err != nil {
		return nil, err
	}

	templates, err := q.store.ListTemplatesByCourt(ctx, courtID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list templates")
	}
	return templates, nil
}

func (q *catalogQueriesImpl) ListPromotions(ctx context.Context, courtID uuid.UUID) ([]*PromotionView, error) {
	if _, err := q.GetCourt(ctx, courtID); err != nil {
		return nil, err
	}

	promotions, err := q.store.ListPromotionsByCourt(ctx, courtID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list promotions")
	}
	return promotions, nil
}
