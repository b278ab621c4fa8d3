package booking

import (
	"time"

	"courtside/internal/domain/money"

	"github.com/google/uuid"
)

// Domain events are accumulated on the aggregate during a mutation and
// pulled once by the usecase, which persists them as notification jobs.

type Event interface {
	EventTopic() string
}

type DepositMade struct {
	BookingID        uuid.UUID
	Amount           money.Money
	RemainingBalance money.Money
	OccurredAt       time.Time
}

func (DepositMade) EventTopic() string { return "booking.deposit_made" }

type PaymentMade struct {
	BookingID        uuid.UUID
	Amount           money.Money
	RemainingBalance money.Money
	OccurredAt       time.Time
}

func (PaymentMade) EventTopic() string { return "booking.payment_made" }

type Cancelled struct {
	BookingID  uuid.UUID
	Reason     string
	OccurredAt time.Time
}

func (Cancelled) EventTopic() string { return "booking.cancelled" }
