//go:build unit || e2e

package builder

import (
	"courtside/internal/domain/money"
	"courtside/internal/domain/schedule"

	"github.com/google/uuid"
)

type TemplateBuilder struct {
	ID         uuid.UUID
	CourtID    uuid.UUID
	Weekdays   []int
	StartMin   int
	EndMin     int
	PriceCents int64
	Status     schedule.TemplateStatus
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		ID:         uuid.New(),
		CourtID:    uuid.New(),
		Weekdays:   []int{1, 2, 3, 4, 5},
		StartMin:   8 * 60,
		EndMin:     20 * 60,
		PriceCents: 150_00,
		Status:     schedule.StatusAvailable,
	}
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) BuildDomain() (*schedule.WeeklyTemplate, error) {
	weekdays, err := schedule.NewWeekdaySet(b.Weekdays...)
	if err != nil {
		return nil, err
	}
	start, err := schedule.NewTimeOfDay(b.StartMin)
	if err != nil {
		return nil, err
	}
	end, err := schedule.NewTimeOfDay(b.EndMin)
	if err != nil {
		return nil, err
	}
	return schedule.NewWeeklyTemplate(b.ID, b.CourtID, weekdays, start, end, money.MustNew(b.PriceCents), b.Status)
}

// MustBuildDomain panics on builder misuse; for tests where the inputs
// are known valid.
func (b *TemplateBuilder) MustBuildDomain() *schedule.WeeklyTemplate {
	t, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return t
}
