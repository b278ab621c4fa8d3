//go:build unit || e2e

package builder

import (
	"time"

	"courtside/internal/domain/promotion"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID          uuid.UUID
	CourtID     uuid.UUID
	Description string
	Kind        promotion.Kind
	Value       float64
	ValidFrom   time.Time
	ValidTo     time.Time
	CreatedAt   time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Now().UTC()
	return &PromotionBuilder{
		ID:          uuid.New(),
		CourtID:     uuid.New(),
		Description: "Early bird discount",
		Kind:        promotion.KindPercentage,
		Value:       20,
		ValidFrom:   now,
		ValidTo:     now.AddDate(0, 1, 0),
		CreatedAt:   now,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	return promotion.NewPromotion(b.ID, b.CourtID, b.Description, b.Kind, b.Value, b.ValidFrom, b.ValidTo)
}

// BuildReconstructed rehydrates with an explicit CreatedAt, for tests
// that depend on promotion precedence ordering.
func (b *PromotionBuilder) BuildReconstructed() *promotion.Promotion {
	return promotion.ReconstructPromotion(
		b.ID, b.CourtID, b.Description, b.Kind, b.Value,
		b.ValidFrom, b.ValidTo, b.CreatedAt, b.CreatedAt,
	)
}
