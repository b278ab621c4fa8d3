//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtside/internal/domain/booking"
	"courtside/internal/domain/money"
	"courtside/internal/domain/schedule"
	"courtside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	b := booking.NewBooking(uuid.New(), time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), "evening match")

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusPendingPayment, b.Status())
	assert.Equal(t, int64(1), b.Version())
	assert.True(t, b.TotalPrice().IsZero())
	assert.True(t, b.TotalPaid().IsZero())
	assert.Equal(t, "evening match", b.Note())
}

func TestAddLine(t *testing.T) {
	t.Run("prices the line from the rate plan", func(t *testing.T) {
		// Default builder: 100.00 per 60-minute slot.
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)

		require.Len(t, b.Lines(), 1)
		assert.Equal(t, int64(200_00), b.TotalPrice().Cents())
		assert.Equal(t, int64(200_00), b.RemainingBalance().Cents())
	})

	t.Run("multiple lines sum into the total", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.MustBuildDomain(10*60, 11*60)

		start, _ := schedule.NewTimeOfDay(14 * 60)
		end, _ := schedule.NewTimeOfDay(16 * 60)
		_, err := b.AddLine(bb.CourtID, start, end, bb.RatePlan(), 60)
		require.NoError(t, err)

		assert.Len(t, b.Lines(), 2)
		assert.Equal(t, int64(300_00), b.TotalPrice().Cents())
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().BuildDomain(12*60, 10*60)
		assert.ErrorIs(t, err, booking.ErrInvalidLineRange)
	})

	t.Run("rejects an uncovered interval", func(t *testing.T) {
		// Templates cover 08:00-22:00 only.
		_, err := builder.NewBookingBuilder().BuildDomain(6*60, 7*60)
		assert.ErrorIs(t, err, schedule.ErrNoRateForInterval)
	})

	t.Run("lines lock once money is in", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.MustBuildDomain(10*60, 12*60)
		require.NoError(t, b.MakeDeposit(money.MustNew(100_00), 50, now))

		start, _ := schedule.NewTimeOfDay(14 * 60)
		end, _ := schedule.NewTimeOfDay(15 * 60)
		_, err := b.AddLine(bb.CourtID, start, end, bb.RatePlan(), 60)
		assert.ErrorIs(t, err, booking.ErrLinesLocked)

		err = b.RemoveLine(b.Lines()[0].ID())
		assert.ErrorIs(t, err, booking.ErrLinesLocked)
	})
}

func TestRemoveLine(t *testing.T) {
	bb := builder.NewBookingBuilder()
	b := bb.MustBuildDomain(10*60, 11*60)

	start, _ := schedule.NewTimeOfDay(14 * 60)
	end, _ := schedule.NewTimeOfDay(16 * 60)
	line, err := b.AddLine(bb.CourtID, start, end, bb.RatePlan(), 60)
	require.NoError(t, err)
	require.Equal(t, int64(300_00), b.TotalPrice().Cents())

	require.NoError(t, b.RemoveLine(line.ID()))
	assert.Equal(t, int64(100_00), b.TotalPrice().Cents())

	assert.ErrorIs(t, b.RemoveLine(uuid.New()), booking.ErrLineNotFound)
}

func TestMakeDeposit(t *testing.T) {
	// Total price 200.00, minimum deposit 50%.
	newBooking := func() *booking.Booking {
		return builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)
	}

	t.Run("deposit below the minimum is rejected", func(t *testing.T) {
		b := newBooking()
		err := b.MakeDeposit(money.MustNew(50_00), 50, now)
		assert.ErrorIs(t, err, booking.ErrDepositBelowMin)
		assert.Equal(t, booking.StatusPendingPayment, b.Status())
		assert.True(t, b.TotalPaid().IsZero())
	})

	t.Run("deposit at the minimum moves to deposited", func(t *testing.T) {
		b := newBooking()
		require.NoError(t, b.MakeDeposit(money.MustNew(100_00), 50, now))

		assert.Equal(t, booking.StatusDeposited, b.Status())
		assert.Equal(t, int64(100_00), b.TotalPaid().Cents())
		assert.Equal(t, int64(100_00), b.InitialDeposit().Cents())
		assert.Equal(t, int64(100_00), b.RemainingBalance().Cents())
	})

	t.Run("full-price deposit completes immediately", func(t *testing.T) {
		b := newBooking()
		require.NoError(t, b.MakeDeposit(money.MustNew(200_00), 50, now))

		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.True(t, b.RemainingBalance().IsZero())
	})

	t.Run("top-up on a deposited booking has no floor", func(t *testing.T) {
		b := newBooking()
		require.NoError(t, b.MakeDeposit(money.MustNew(100_00), 50, now))

		// 10.00 is far below 50% but the booking is already deposited.
		require.NoError(t, b.MakeDeposit(money.MustNew(10_00), 50, now))
		assert.Equal(t, int64(110_00), b.TotalPaid().Cents())
		assert.Equal(t, int64(100_00), b.InitialDeposit().Cents())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		b := newBooking()
		assert.ErrorIs(t, b.MakeDeposit(money.Zero(), 50, now), booking.ErrNonPositiveAmount)
	})

	t.Run("rejects funds on a cancelled booking", func(t *testing.T) {
		b := newBooking()
		require.NoError(t, b.Cancel("rained out", now))

		err := b.MakeDeposit(money.MustNew(200_00), 50, now)
		assert.ErrorIs(t, err, booking.ErrIllegalTransition)
	})
}

func TestMakePayment(t *testing.T) {
	t.Run("deposit then payment completes the booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)

		require.NoError(t, b.MakeDeposit(money.MustNew(100_00), 50, now))
		require.NoError(t, b.MakePayment(money.MustNew(100_00), now))

		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.Equal(t, int64(200_00), b.TotalPaid().Cents())
		assert.True(t, b.RemainingBalance().IsZero())
	})

	t.Run("partial payment stays deposited", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)

		require.NoError(t, b.MakeDeposit(money.MustNew(100_00), 50, now))
		require.NoError(t, b.MakePayment(money.MustNew(50_00), now))

		assert.Equal(t, booking.StatusDeposited, b.Status())
		assert.Equal(t, int64(50_00), b.RemainingBalance().Cents())
	})

	t.Run("rejects payment on a completed booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)
		require.NoError(t, b.MakeDeposit(money.MustNew(200_00), 50, now))
		require.Equal(t, booking.StatusCompleted, b.Status())

		err := b.MakePayment(money.MustNew(1_00), now)
		assert.ErrorIs(t, err, booking.ErrIllegalTransition)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancel records reason and time", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)

		require.NoError(t, b.Cancel("rained out", now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancellationReason())
		assert.Equal(t, "rained out", *b.CancellationReason())
		require.NotNil(t, b.CancellationTime())
		assert.Equal(t, now, *b.CancellationTime())
	})

	t.Run("cancel works from any non-cancelled status", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)
		require.NoError(t, b.MakeDeposit(money.MustNew(200_00), 50, now))
		require.Equal(t, booking.StatusCompleted, b.Status())

		assert.NoError(t, b.Cancel("no-show", now))
	})

	t.Run("double cancel fails", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)
		require.NoError(t, b.Cancel("first", now))

		assert.ErrorIs(t, b.Cancel("second", now), booking.ErrAlreadyCancelled)
		assert.Equal(t, "first", *b.CancellationReason())
	})
}

func TestConfirm(t *testing.T) {
	t.Run("pending moves to deposited with zero paid", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)

		require.NoError(t, b.Confirm())

		assert.Equal(t, booking.StatusDeposited, b.Status())
		assert.True(t, b.TotalPaid().IsZero())
	})

	t.Run("only a pending booking can be confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)
		require.NoError(t, b.Confirm())

		assert.ErrorIs(t, b.Confirm(), booking.ErrNotPending)
	})
}

func TestUpdateStatus(t *testing.T) {
	all := []booking.Status{
		booking.StatusPendingPayment,
		booking.StatusDeposited,
		booking.StatusCompleted,
		booking.StatusCancelled,
		booking.StatusPaymentFail,
	}

	allowed := map[booking.Status]map[booking.Status]bool{
		booking.StatusPendingPayment: {
			booking.StatusDeposited:   true,
			booking.StatusCompleted:   true,
			booking.StatusCancelled:   true,
			booking.StatusPaymentFail: true,
		},
		booking.StatusDeposited: {
			booking.StatusCompleted:   true,
			booking.StatusCancelled:   true,
			booking.StatusPaymentFail: true,
		},
		booking.StatusPaymentFail: {
			booking.StatusPendingPayment: true,
			booking.StatusCancelled:      true,
		},
		booking.StatusCompleted: {},
		booking.StatusCancelled: {},
	}

	for _, from := range all {
		for _, to := range all {
			from, to := from, to
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				b := reconstructWithStatus(from)
				err := b.UpdateStatus(to)
				if allowed[from][to] {
					require.NoError(t, err)
					assert.Equal(t, to, b.Status())
				} else {
					require.ErrorIs(t, err, booking.ErrIllegalTransition)
					assert.Equal(t, from, b.Status())

					var ite *booking.IllegalTransitionError
					require.ErrorAs(t, err, &ite)
					assert.Equal(t, from, ite.From)
					assert.Equal(t, to, ite.To)
				}
			})
		}
	}

	t.Run("rejects unknown status", func(t *testing.T) {
		b := reconstructWithStatus(booking.StatusPendingPayment)
		assert.ErrorIs(t, b.UpdateStatus("archived"), booking.ErrInvalidStatus)
	})
}

func TestStartTime(t *testing.T) {
	bb := builder.NewBookingBuilder()
	b := bb.MustBuildDomain(14*60, 16*60)

	start, _ := schedule.NewTimeOfDay(9 * 60)
	end, _ := schedule.NewTimeOfDay(10 * 60)
	_, err := b.AddLine(bb.CourtID, start, end, bb.RatePlan(), 60)
	require.NoError(t, err)

	// Earliest line start wins regardless of insertion order.
	assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), b.StartTime())
}

func TestPullEvents(t *testing.T) {
	b := builder.NewBookingBuilder().MustBuildDomain(10*60, 12*60)

	require.NoError(t, b.MakeDeposit(money.MustNew(100_00), 50, now))
	require.NoError(t, b.MakePayment(money.MustNew(100_00), now))
	require.NoError(t, b.Cancel("changed plans", now))

	events := b.PullEvents()
	require.Len(t, events, 3)
	assert.Equal(t, "booking.deposit_made", events[0].EventTopic())
	assert.Equal(t, "booking.payment_made", events[1].EventTopic())
	assert.Equal(t, "booking.cancelled", events[2].EventTopic())

	deposit, ok := events[0].(booking.DepositMade)
	require.True(t, ok)
	assert.Equal(t, int64(100_00), deposit.Amount.Cents())
	assert.Equal(t, int64(100_00), deposit.RemainingBalance.Cents())

	// Pulling drains the queue.
	assert.Empty(t, b.PullEvents())
}

func reconstructWithStatus(status booking.Status) *booking.Booking {
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(),
		time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		status,
		money.MustNew(200_00), money.Zero(), money.Zero(),
		"", nil, nil, nil, 1,
		now, now,
	)
}
