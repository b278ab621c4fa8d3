//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtside/internal/domain/booking"
	"courtside/internal/domain/money"
	"courtside/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyRefundCalculator(t *testing.T) {
	calc := booking.NewPolicyRefundCalculator()

	// Booking starts Monday 2026-09-07 10:00, policy: 24h window, 50% refund.
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	policy := builder.NewCourtBuilder().BuildPolicy()
	require.Equal(t, 24, policy.CancellationWindowHours)
	require.Equal(t, 50.0, policy.RefundPercent)

	paidBooking := func() *booking.Booking {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)
		require.NoError(t, b.MakeDeposit(money.MustNew(200_00), 50, now))
		return b
	}

	tests := []struct {
		name        string
		actor       booking.CancelActor
		requestedAt time.Time
		wantCents   int64
	}{
		{
			name:        "renter cancels well before the window",
			actor:       booking.CancelByRenter,
			requestedAt: start.Add(-48 * time.Hour),
			wantCents:   200_00,
		},
		{
			name:        "renter cancels exactly at the window boundary",
			actor:       booking.CancelByRenter,
			requestedAt: start.Add(-24 * time.Hour),
			wantCents:   200_00,
		},
		{
			name:        "renter cancels inside the window",
			actor:       booking.CancelByRenter,
			requestedAt: start.Add(-23 * time.Hour),
			wantCents:   100_00,
		},
		{
			name:        "renter cancels after the start",
			actor:       booking.CancelByRenter,
			requestedAt: start.Add(time.Hour),
			wantCents:   100_00,
		},
		{
			name:        "owner cancels inside the window",
			actor:       booking.CancelByOwner,
			requestedAt: start.Add(-time.Hour),
			wantCents:   200_00,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refund := calc.Refund(paidBooking(), policy, tt.actor, tt.requestedAt)
			assert.Equal(t, tt.wantCents, refund.Cents())
		})
	}

	t.Run("partial payment refunds against paid, not price", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)
		require.NoError(t, b.MakeDeposit(money.MustNew(100_00), 50, now))

		refund := calc.Refund(b, policy, booking.CancelByRenter, start.Add(-time.Hour))
		assert.Equal(t, int64(50_00), refund.Cents())
	})

	t.Run("nothing paid refunds nothing", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)

		refund := calc.Refund(b, policy, booking.CancelByOwner, start)
		assert.True(t, refund.IsZero())
	})
}
