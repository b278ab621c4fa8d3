//go:build unit || e2e

package builder

import (
	"courtside/internal/domain/court"

	"github.com/google/uuid"
)

type CourtBuilder struct {
	ID                      uuid.UUID
	OwnerID                 uuid.UUID
	Name                    string
	SlotDurationMin         int
	CancellationWindowHours int
	RefundPercent           float64
	MinDepositPercent       float64
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		ID:                      uuid.New(),
		OwnerID:                 uuid.New(),
		Name:                    "Center Court",
		SlotDurationMin:         60,
		CancellationWindowHours: 24,
		RefundPercent:           50,
		MinDepositPercent:       50,
	}
}

func (b *CourtBuilder) With(mutate func(*CourtBuilder)) *CourtBuilder {
	mutate(b)
	return b
}

func (b *CourtBuilder) BuildDomain() (*court.Court, error) {
	return court.NewCourt(
		b.ID, b.OwnerID, b.Name,
		b.SlotDurationMin, b.CancellationWindowHours,
		b.RefundPercent, b.MinDepositPercent,
	)
}

func (b *CourtBuilder) BuildPolicy() court.Policy {
	return court.Policy{
		SlotDurationMin:         b.SlotDurationMin,
		CancellationWindowHours: b.CancellationWindowHours,
		RefundPercent:           b.RefundPercent,
		MinDepositPercent:       b.MinDepositPercent,
	}
}
