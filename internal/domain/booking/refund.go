package booking

import (
	"time"

	"courtside/internal/domain/court"
	"courtside/internal/domain/money"
)

// CancelActor distinguishes who asked for the cancellation; the refund
// rule differs because an owner-side cancellation is the facility's
// fault, not the renter's.
type CancelActor string

const (
	CancelByRenter CancelActor = "renter"
	CancelByOwner  CancelActor = "owner"
)

type RefundCalculator interface {
	Refund(b *Booking, policy court.Policy, actor CancelActor, requestedAt time.Time) money.Money
}

// PolicyRefundCalculator applies the court's cancellation policy:
// requests made at least the cancellation window before the booking
// start refund everything paid; inside the window only the court's
// refund percentage is returned. Owner cancellations always refund in
// full regardless of timing.
type PolicyRefundCalculator struct{}

func NewPolicyRefundCalculator() *PolicyRefundCalculator {
	return &PolicyRefundCalculator{}
}

func (c *PolicyRefundCalculator) Refund(
	b *Booking,
	policy court.Policy,
	actor CancelActor,
	requestedAt time.Time,
) money.Money {
	paid := b.TotalPaid()
	if actor == CancelByOwner {
		return paid
	}

	hoursUntilStart := b.StartTime().Sub(requestedAt).Hours()
	if hoursUntilStart >= float64(policy.CancellationWindowHours) {
		return paid
	}
	return paid.Percent(policy.RefundPercent)
}
