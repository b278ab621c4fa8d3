//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"courtside/internal/domain/court"
	"courtside/internal/domain/schedule"
	"courtside/internal/infra"
	"courtside/internal/usecase/queries"
	"courtside/tests/common/builder"
	queriesmock "courtside/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueriesGetGrid(t *testing.T) {
	courtID := uuid.New()
	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	template := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) {
		b.CourtID = courtID
	}).MustBuildDomain()

	snapshot := &queries.AvailabilitySnapshot{
		Policy:    court.Policy{SlotDurationMin: 60, CancellationWindowHours: 24, RefundPercent: 50, MinDepositPercent: 50},
		Templates: []*schedule.WeeklyTemplate{template},
	}

	t.Run("computes the grid from the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		store.EXPECT().FetchSnapshot(gomock.Any(), courtID, from, to).Return(snapshot, nil)

		q := queries.NewAvailabilityQueries(store)
		grid, err := q.GetGrid(context.Background(), courtID, from, to)
		require.NoError(t, err)

		assert.Equal(t, courtID, grid.CourtID)
		require.Len(t, grid.Days, 2)
		// Monday 08:00-20:00 at 60-minute slots.
		assert.Len(t, grid.Days[0].Slots, 12)
		assert.Equal(t, 8*60, grid.Days[0].Slots[0].StartMin)
		assert.Equal(t, int64(150_00), grid.Days[0].Slots[0].PriceCents)
	})

	t.Run("missing court maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		store.EXPECT().FetchSnapshot(gomock.Any(), courtID, from, to).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no rows"))

		q := queries.NewAvailabilityQueries(store)
		_, err := q.GetGrid(context.Background(), courtID, from, to)
		assert.ErrorIs(t, err, queries.ErrCourtNotFound)
	})

	t.Run("range violations map to invalid range", func(t *testing.T) {
		testCases := []struct {
			name string
			from time.Time
			to   time.Time
		}{
			{name: "end before start", from: to, to: from},
			{name: "range too long", from: from, to: from.AddDate(0, 0, 40)},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				store := queriesmock.NewMockAvailabilityReadStore(ctrl)
				store.EXPECT().FetchSnapshot(gomock.Any(), courtID, tc.from, tc.to).Return(snapshot, nil)

				q := queries.NewAvailabilityQueries(store)
				_, err := q.GetGrid(context.Background(), courtID, tc.from, tc.to)
				assert.ErrorIs(t, err, queries.ErrInvalidRange)
			})
		}
	})
}
