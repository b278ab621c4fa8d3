//go:build unit

package availability_test

import (
	"testing"
	"time"

	"courtside/internal/domain/availability"
	"courtside/internal/domain/money"
	"courtside/internal/domain/promotion"
	"courtside/internal/domain/schedule"
	"courtside/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(money.Money{}, schedule.TimeOfDay{}),
	cmpopts.EquateEmpty(),
}

var (
	monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
)

func courtTemplate(courtID uuid.UUID, mutate func(*builder.TemplateBuilder)) *schedule.WeeklyTemplate {
	return builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
		b.CourtID = courtID
		if mutate != nil {
			mutate(b)
		}
	}).MustBuildDomain()
}

func mustTime(minutes int) schedule.TimeOfDay {
	t, err := schedule.NewTimeOfDay(minutes)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeValidation(t *testing.T) {
	courtID := uuid.New()

	tests := []struct {
		name  string
		in    availability.Input
		errIs error
	}{
		{
			name: "end before start",
			in: availability.Input{
				CourtID: courtID, StartDate: sunday, EndDate: monday, SlotDurationMin: 60,
			},
			errIs: availability.ErrEndBeforeStart,
		},
		{
			name: "range longer than 31 days",
			in: availability.Input{
				CourtID: courtID, StartDate: monday, EndDate: monday.AddDate(0, 0, 32), SlotDurationMin: 60,
			},
			errIs: availability.ErrRangeTooLong,
		},
		{
			name: "non-positive slot duration",
			in: availability.Input{
				CourtID: courtID, StartDate: monday, EndDate: sunday, SlotDurationMin: 0,
			},
			errIs: availability.ErrInvalidSlotDuration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := availability.Compute(tt.in)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestComputeGridShape(t *testing.T) {
	courtID := uuid.New()
	// Weekdays 1-5, 08:00-20:00 at 60-minute slots: 12 slots per weekday.
	tpl := courtTemplate(courtID, nil)

	grid, err := availability.Compute(availability.Input{
		CourtID:         courtID,
		StartDate:       monday,
		EndDate:         sunday,
		SlotDurationMin: 60,
		Templates:       []*schedule.WeeklyTemplate{tpl},
	})
	require.NoError(t, err)

	require.Len(t, grid.Days, 7)
	assert.Equal(t, monday, grid.Days[0].Date)
	assert.Equal(t, 1, grid.Days[0].Weekday)

	for i, day := range grid.Days {
		if day.Weekday <= 5 {
			assert.Len(t, day.Slots, 12, "day %d", i)
		} else {
			assert.Empty(t, day.Slots, "day %d", i)
		}
	}

	first := grid.Days[0].Slots[0]
	assert.Equal(t, mustTime(8*60), first.Start)
	assert.Equal(t, mustTime(9*60), first.End)
	assert.Equal(t, availability.SlotAvailable, first.Status)
	assert.Equal(t, int64(150_00), first.Price.Cents())
	assert.Nil(t, first.Promotion)
	assert.Nil(t, first.OccupantID)
}

func TestComputeBookedOverlay(t *testing.T) {
	courtID := uuid.New()
	tpl := courtTemplate(courtID, nil)
	renterID := uuid.New()

	grid, err := availability.Compute(availability.Input{
		CourtID:         courtID,
		StartDate:       monday,
		EndDate:         monday,
		SlotDurationMin: 60,
		Templates:       []*schedule.WeeklyTemplate{tpl},
		BookedLines: []availability.BookedLine{
			{
				BookingID: uuid.New(), RenterID: renterID, CourtID: courtID,
				Date: monday, Start: mustTime(10 * 60), End: mustTime(12 * 60),
			},
			// Same interval on another court must not bleed over.
			{
				BookingID: uuid.New(), RenterID: uuid.New(), CourtID: uuid.New(),
				Date: monday, Start: mustTime(14 * 60), End: mustTime(15 * 60),
			},
			// Same interval on another date must not bleed over either.
			{
				BookingID: uuid.New(), RenterID: uuid.New(), CourtID: courtID,
				Date: monday.AddDate(0, 0, 1), Start: mustTime(16 * 60), End: mustTime(17 * 60),
			},
		},
	})
	require.NoError(t, err)

	slots := grid.Days[0].Slots
	require.Len(t, slots, 12)

	for _, slot := range slots {
		booked := slot.Start.Minutes() >= 10*60 && slot.Start.Minutes() < 12*60
		if booked {
			assert.Equal(t, availability.SlotBooked, slot.Status, slot.Start.String())
			require.NotNil(t, slot.OccupantID)
			assert.Equal(t, renterID, *slot.OccupantID)
		} else {
			assert.Equal(t, availability.SlotAvailable, slot.Status, slot.Start.String())
			assert.Nil(t, slot.OccupantID)
		}
	}
}

func TestComputeMaintenance(t *testing.T) {
	courtID := uuid.New()
	tpl := courtTemplate(courtID, func(b *builder.TemplateBuilder) {
		b.Status = schedule.StatusMaintenance
	})
	promo := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
		b.CourtID = courtID
		b.ValidFrom = monday
		b.ValidTo = sunday
	}).BuildReconstructed()

	grid, err := availability.Compute(availability.Input{
		CourtID:         courtID,
		StartDate:       monday,
		EndDate:         monday,
		SlotDurationMin: 60,
		Templates:       []*schedule.WeeklyTemplate{tpl},
		Promotions:      []*promotion.Promotion{promo},
		BookedLines: []availability.BookedLine{
			{
				BookingID: uuid.New(), RenterID: uuid.New(), CourtID: courtID,
				Date: monday, Start: mustTime(10 * 60), End: mustTime(11 * 60),
			},
		},
	})
	require.NoError(t, err)

	// Maintenance wins over both booked lines and promotions.
	for _, slot := range grid.Days[0].Slots {
		assert.Equal(t, availability.SlotMaintenance, slot.Status)
		assert.Nil(t, slot.OccupantID)
		assert.Nil(t, slot.Promotion)
		assert.Equal(t, int64(150_00), slot.Price.Cents())
	}
}

func TestComputePromotions(t *testing.T) {
	courtID := uuid.New()
	tpl := courtTemplate(courtID, nil)

	t.Run("percentage discount is attached with its price", func(t *testing.T) {
		promo := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.CourtID = courtID
			b.ValidFrom = monday
			b.ValidTo = monday
		}).BuildReconstructed()

		grid, err := availability.Compute(availability.Input{
			CourtID:         courtID,
			StartDate:       monday,
			EndDate:         monday.AddDate(0, 0, 1),
			SlotDurationMin: 60,
			Templates:       []*schedule.WeeklyTemplate{tpl},
			Promotions:      []*promotion.Promotion{promo},
		})
		require.NoError(t, err)

		slot := grid.Days[0].Slots[0]
		require.NotNil(t, slot.Promotion)
		assert.Equal(t, promo.ID(), slot.Promotion.ID)
		assert.Equal(t, promotion.KindPercentage, slot.Promotion.Kind)
		// 20% off 150.00.
		assert.Equal(t, int64(120_00), slot.Promotion.DiscountedPrice.Cents())

		// Outside the validity window nothing is attached.
		assert.Nil(t, grid.Days[1].Slots[0].Promotion)
	})

	t.Run("newest promotion wins the overlap", func(t *testing.T) {
		older := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.CourtID = courtID
			b.ValidFrom = monday
			b.ValidTo = sunday
			b.Value = 10
			b.CreatedAt = monday.Add(-48 * time.Hour)
		}).BuildReconstructed()
		newer := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.CourtID = courtID
			b.ValidFrom = monday
			b.ValidTo = sunday
			b.Value = 30
			b.CreatedAt = monday.Add(-24 * time.Hour)
		}).BuildReconstructed()

		compute := func(promos []*promotion.Promotion) *availability.Grid {
			grid, err := availability.Compute(availability.Input{
				CourtID:         courtID,
				StartDate:       monday,
				EndDate:         monday,
				SlotDurationMin: 60,
				Templates:       []*schedule.WeeklyTemplate{tpl},
				Promotions:      promos,
			})
			require.NoError(t, err)
			return grid
		}

		forward := compute([]*promotion.Promotion{older, newer})
		backward := compute([]*promotion.Promotion{newer, older})

		for _, grid := range []*availability.Grid{forward, backward} {
			slot := grid.Days[0].Slots[0]
			require.NotNil(t, slot.Promotion)
			assert.Equal(t, newer.ID(), slot.Promotion.ID)
			assert.Equal(t, 30.0, slot.Promotion.Value)
		}
	})
}

func TestComputeOrderIndependence(t *testing.T) {
	courtID := uuid.New()
	morning := courtTemplate(courtID, func(b *builder.TemplateBuilder) {
		b.StartMin = 8 * 60
		b.EndMin = 12 * 60
	})
	evening := courtTemplate(courtID, func(b *builder.TemplateBuilder) {
		b.StartMin = 18 * 60
		b.EndMin = 20 * 60
		b.PriceCents = 200_00
	})

	lines := []availability.BookedLine{
		{
			BookingID: uuid.New(), RenterID: uuid.New(), CourtID: courtID,
			Date: monday, Start: mustTime(9 * 60), End: mustTime(10 * 60),
		},
		{
			BookingID: uuid.New(), RenterID: uuid.New(), CourtID: courtID,
			Date: monday, Start: mustTime(18 * 60), End: mustTime(19 * 60),
		},
	}

	compute := func(templates []*schedule.WeeklyTemplate, booked []availability.BookedLine) *availability.Grid {
		grid, err := availability.Compute(availability.Input{
			CourtID:         courtID,
			StartDate:       monday,
			EndDate:         monday,
			SlotDurationMin: 60,
			Templates:       templates,
			BookedLines:     booked,
		})
		require.NoError(t, err)
		return grid
	}

	forward := compute([]*schedule.WeeklyTemplate{morning, evening}, lines)
	backward := compute([]*schedule.WeeklyTemplate{evening, morning}, []availability.BookedLine{lines[1], lines[0]})

	if diff := cmp.Diff(forward, backward, cmpOpts...); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	slots := forward.Days[0].Slots
	require.Len(t, slots, 6)
	assert.Equal(t, mustTime(8*60), slots[0].Start)
	assert.Equal(t, mustTime(18*60), slots[4].Start)
	assert.Equal(t, int64(200_00), slots[4].Price.Cents())
}
