//go:build unit

package schedule_test

import (
	"testing"

	"courtside/internal/domain/schedule"
	"courtside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatePlanPriceFor(t *testing.T) {
	courtID := uuid.New()

	morning := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
		b.CourtID = courtID
		b.Weekdays = []int{1, 2, 3, 4, 5}
		b.StartMin = 8 * 60
		b.EndMin = 12 * 60
		b.PriceCents = 100_00
	}).MustBuildDomain()

	evening := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
		b.CourtID = courtID
		b.Weekdays = []int{1, 2, 3, 4, 5}
		b.StartMin = 18 * 60
		b.EndMin = 22 * 60
		b.PriceCents = 150_00
	}).MustBuildDomain()

	plan := schedule.NewRatePlan([]*schedule.WeeklyTemplate{morning, evening})

	priceFor := func(weekday, startMin, endMin int) (int64, error) {
		start, err := schedule.NewTimeOfDay(startMin)
		require.NoError(t, err)
		end, err := schedule.NewTimeOfDay(endMin)
		require.NoError(t, err)
		price, err := plan.PriceFor(weekday, start, end, 60)
		if err != nil {
			return 0, err
		}
		return price.Cents(), nil
	}

	t.Run("sums slot rates across the interval", func(t *testing.T) {
		cents, err := priceFor(1, 8*60, 10*60)
		require.NoError(t, err)
		assert.Equal(t, int64(200_00), cents)
	})

	t.Run("evening rate differs from morning rate", func(t *testing.T) {
		cents, err := priceFor(1, 18*60, 19*60)
		require.NoError(t, err)
		assert.Equal(t, int64(150_00), cents)
	})

	t.Run("interval outside any template is unpriceable", func(t *testing.T) {
		_, err := priceFor(1, 13*60, 14*60)
		assert.ErrorIs(t, err, schedule.ErrNoRateForInterval)
	})

	t.Run("interval straddling a coverage gap is unpriceable", func(t *testing.T) {
		_, err := priceFor(1, 11*60, 13*60)
		assert.ErrorIs(t, err, schedule.ErrNoRateForInterval)
	})

	t.Run("weekday without template is unpriceable", func(t *testing.T) {
		_, err := priceFor(6, 8*60, 9*60)
		assert.ErrorIs(t, err, schedule.ErrNoRateForInterval)
	})

	t.Run("maintenance template does not price slots", func(t *testing.T) {
		maintenance := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
			b.CourtID = courtID
			b.Weekdays = []int{6}
			b.StartMin = 8 * 60
			b.EndMin = 12 * 60
			b.Status = schedule.StatusMaintenance
		}).MustBuildDomain()

		p := schedule.NewRatePlan([]*schedule.WeeklyTemplate{maintenance})

		start, _ := schedule.NewTimeOfDay(8 * 60)
		end, _ := schedule.NewTimeOfDay(9 * 60)
		_, err := p.PriceFor(6, start, end, 60)
		assert.ErrorIs(t, err, schedule.ErrNoRateForInterval)
	})

	t.Run("first covering template wins for overlapping templates", func(t *testing.T) {
		early := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
			b.Weekdays = []int{1}
			b.StartMin = 8 * 60
			b.EndMin = 12 * 60
			b.PriceCents = 80_00
		}).MustBuildDomain()
		late := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
			b.Weekdays = []int{1}
			b.StartMin = 9 * 60
			b.EndMin = 12 * 60
			b.PriceCents = 500_00
		}).MustBuildDomain()

		// Order handed to the plan must not matter.
		forward := schedule.NewRatePlan([]*schedule.WeeklyTemplate{early, late})
		backward := schedule.NewRatePlan([]*schedule.WeeklyTemplate{late, early})

		start, _ := schedule.NewTimeOfDay(9 * 60)
		end, _ := schedule.NewTimeOfDay(10 * 60)

		p1, err := forward.PriceFor(1, start, end, 60)
		require.NoError(t, err)
		p2, err := backward.PriceFor(1, start, end, 60)
		require.NoError(t, err)

		assert.Equal(t, int64(80_00), p1.Cents())
		assert.Equal(t, p1, p2)
	})
}
