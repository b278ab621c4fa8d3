//go:build unit

package court_test

import (
	"strings"
	"testing"

	"courtside/internal/domain/court"
	"courtside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourt(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.CourtBuilder)
		errIs  error
	}{
		{
			name:   "valid court",
			mutate: nil,
		},
		{
			name: "empty name",
			mutate: func(b *builder.CourtBuilder) {
				b.Name = "   "
			},
			errIs: court.ErrEmptyCourtName,
		},
		{
			name: "name too long",
			mutate: func(b *builder.CourtBuilder) {
				b.Name = strings.Repeat("a", 256)
			},
			errIs: court.ErrCourtNameTooLong,
		},
		{
			name: "zero slot duration",
			mutate: func(b *builder.CourtBuilder) {
				b.SlotDurationMin = 0
			},
			errIs: court.ErrInvalidSlotDuration,
		},
		{
			name: "slot duration longer than a day",
			mutate: func(b *builder.CourtBuilder) {
				b.SlotDurationMin = 25 * 60
			},
			errIs: court.ErrSlotDurationTooCoarse,
		},
		{
			name: "negative cancellation window",
			mutate: func(b *builder.CourtBuilder) {
				b.CancellationWindowHours = -1
			},
			errIs: court.ErrNegativeCancelWindow,
		},
		{
			name: "refund percent above 100",
			mutate: func(b *builder.CourtBuilder) {
				b.RefundPercent = 101
			},
			errIs: court.ErrInvalidPercentage,
		},
		{
			name: "negative minimum deposit percent",
			mutate: func(b *builder.CourtBuilder) {
				b.MinDepositPercent = -10
			},
			errIs: court.ErrInvalidPercentage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := builder.NewCourtBuilder()
			if tt.mutate != nil {
				cb.With(tt.mutate)
			}
			c, err := cb.BuildDomain()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cb.ID, c.ID())
			assert.Equal(t, cb.Name, c.Name())
		})
	}

	t.Run("generates an id when nil", func(t *testing.T) {
		c, err := builder.NewCourtBuilder().With(func(b *builder.CourtBuilder) {
			b.ID = uuid.Nil
		}).BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.ID())
	})

	t.Run("trims the name", func(t *testing.T) {
		c, err := builder.NewCourtBuilder().With(func(b *builder.CourtBuilder) {
			b.Name = "  Center Court  "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Center Court", c.Name())
	})
}

func TestPolicy(t *testing.T) {
	c, err := builder.NewCourtBuilder().BuildDomain()
	require.NoError(t, err)

	policy := c.Policy()
	assert.Equal(t, 60, policy.SlotDurationMin)
	assert.Equal(t, 24, policy.CancellationWindowHours)
	assert.Equal(t, 50.0, policy.RefundPercent)
	assert.Equal(t, 50.0, policy.MinDepositPercent)
}

func TestIsOwnedBy(t *testing.T) {
	cb := builder.NewCourtBuilder()
	c, err := cb.BuildDomain()
	require.NoError(t, err)

	assert.True(t, c.IsOwnedBy(cb.OwnerID))
	assert.False(t, c.IsOwnedBy(uuid.New()))
}
