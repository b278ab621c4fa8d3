package booking

import (
	"errors"
	"time"

	"courtside/internal/domain/money"
	"courtside/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrNotPending        = errors.New("booking is not pending payment")
	ErrLinesLocked       = errors.New("booking lines can only change before payment")
	ErrInvalidLineRange  = errors.New("line start must be before end")
	ErrLineNotFound      = errors.New("booking line not found")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrDepositBelowMin   = errors.New("deposit is below the court's minimum")
	ErrEmptyCancelReason = errors.New("cancellation reason cannot be empty")
)

// Booking is the aggregate root for a reservation's financial lifecycle.
// It owns its lines and enforces the status transition table on every
// mutation. remainingBalance is always totalPrice - totalPaid, floored
// at zero by Money arithmetic.
type Booking struct {
	id                 uuid.UUID
	renterID           uuid.UUID
	date               time.Time
	status             Status
	totalPrice         money.Money
	totalPaid          money.Money
	initialDeposit     money.Money
	note               string
	cancellationReason *string
	cancellationTime   *time.Time
	lines              []*Line
	version            int64
	createdAt          time.Time
	updatedAt          time.Time

	events []Event
}

func NewBooking(renterID uuid.UUID, date time.Time, note string) *Booking {
	return &Booking{
		id:       uuid.New(),
		renterID: renterID,
		date:     date,
		status:   StatusPendingPayment,
		note:     note,
		version:  1,
	}
}

func ReconstructBooking(
	id, renterID uuid.UUID,
	date time.Time,
	status Status,
	totalPrice, totalPaid, initialDeposit money.Money,
	note string,
	cancellationReason *string,
	cancellationTime *time.Time,
	lines []*Line,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		renterID:           renterID,
		date:               date,
		status:             status,
		totalPrice:         totalPrice,
		totalPaid:          totalPaid,
		initialDeposit:     initialDeposit,
		note:               note,
		cancellationReason: cancellationReason,
		cancellationTime:   cancellationTime,
		lines:              lines,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// AddLine appends a court-time line priced against the supplied rate
// plan and recomputes the totals. Lines only change while the booking
// is still pending payment.
func (b *Booking) AddLine(
	courtID uuid.UUID,
	start, end schedule.TimeOfDay,
	plan schedule.RatePlan,
	slotDurationMin int,
) (*Line, error) {
	if b.status != StatusPendingPayment {
		return nil, ErrLinesLocked
	}
	if !start.Before(end) {
		return nil, ErrInvalidLineRange
	}

	price, err := plan.PriceFor(schedule.ISOWeekday(b.date), start, end, slotDurationMin)
	if err != nil {
		return nil, err
	}

	line := newLine(b.id, courtID, start, end, price)
	b.lines = append(b.lines, line)
	b.reprice()
	return line, nil
}

func (b *Booking) RemoveLine(lineID uuid.UUID) error {
	if b.status != StatusPendingPayment {
		return ErrLinesLocked
	}

	for i, l := range b.lines {
		if l.id == lineID {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			b.reprice()
			return nil
		}
	}
	return ErrLineNotFound
}

func (b *Booking) reprice() {
	total := money.Zero()
	for _, l := range b.lines {
		total = total.Add(l.price)
	}
	b.totalPrice = total
}

// MakeDeposit applies a deposit payment. The minimum-deposit check only
// guards the first money in: a top-up on an already-deposited booking
// has no floor.
func (b *Booking) MakeDeposit(amount money.Money, minDepositPercent float64, now time.Time) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if b.status == StatusPendingPayment && amount.LessThan(b.totalPrice.Percent(minDepositPercent)) {
		return ErrDepositBelowMin
	}

	if err := b.applyFunds(amount); err != nil {
		return err
	}
	if b.initialDeposit.IsZero() {
		b.initialDeposit = amount
	}

	b.events = append(b.events, DepositMade{
		BookingID:        b.id,
		Amount:           amount,
		RemainingBalance: b.RemainingBalance(),
		OccurredAt:       now,
	})
	return nil
}

// MakePayment applies a balance payment. No minimum applies; a prior
// deposit is assumed.
func (b *Booking) MakePayment(amount money.Money, now time.Time) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	if err := b.applyFunds(amount); err != nil {
		return err
	}

	b.events = append(b.events, PaymentMade{
		BookingID:        b.id,
		Amount:           amount,
		RemainingBalance: b.RemainingBalance(),
		OccurredAt:       now,
	})
	return nil
}

func (b *Booking) applyFunds(amount money.Money) error {
	paid := b.totalPaid.Add(amount)

	next := StatusDeposited
	if !b.totalPrice.Sub(paid).IsPositive() {
		next = StatusCompleted
	}
	if b.status.IsTerminal() {
		return &IllegalTransitionError{From: b.status, To: next}
	}
	if next != b.status && !b.status.CanTransitionTo(next) {
		return &IllegalTransitionError{From: b.status, To: next}
	}

	b.totalPaid = paid
	b.status = next
	return nil
}

// Cancel is unconditional apart from idempotence: cancelling an already
// cancelled booking is the only failure, regardless of payment state.
func (b *Booking) Cancel(reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	b.status = StatusCancelled
	b.cancellationReason = &reason
	b.cancellationTime = &now

	b.events = append(b.events, Cancelled{
		BookingID:  b.id,
		Reason:     reason,
		OccurredAt: now,
	})
	return nil
}

// Confirm moves a pending booking to deposited without touching totals.
// This is the owner-side manual confirmation path: it deliberately
// allows a deposited status with zero paid.
func (b *Booking) Confirm() error {
	if b.status != StatusPendingPayment {
		return ErrNotPending
	}
	b.status = StatusDeposited
	return nil
}

// UpdateStatus is the administrative override; unlike Cancel it follows
// the transition table strictly.
func (b *Booking) UpdateStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return &IllegalTransitionError{From: b.status, To: next}
	}
	b.status = next
	return nil
}

func (b *Booking) SetCancellationReason(reason string) error {
	if reason == "" {
		return ErrEmptyCancelReason
	}
	b.cancellationReason = &reason
	return nil
}

func (b *Booking) SetCancellationTime(t time.Time) {
	b.cancellationTime = &t
}

// StartTime is the earliest line start anchored on the booking date,
// used by the cancellation refund window.
func (b *Booking) StartTime() time.Time {
	if len(b.lines) == 0 {
		return b.date
	}
	earliest := b.lines[0].start
	for _, l := range b.lines[1:] {
		if l.start.Before(earliest) {
			earliest = l.start
		}
	}
	return earliest.On(b.date)
}

func (b *Booking) RemainingBalance() money.Money {
	return b.totalPrice.Sub(b.totalPaid)
}

// PullEvents returns and clears the accumulated domain events.
func (b *Booking) PullEvents() []Event {
	events := b.events
	b.events = nil
	return events
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) RenterID() uuid.UUID          { return b.renterID }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) TotalPrice() money.Money      { return b.totalPrice }
func (b *Booking) TotalPaid() money.Money       { return b.totalPaid }
func (b *Booking) InitialDeposit() money.Money  { return b.initialDeposit }
func (b *Booking) Note() string                 { return b.note }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CancellationTime() *time.Time { return b.cancellationTime }
func (b *Booking) Lines() []*Line               { return b.lines }
func (b *Booking) Version() int64               { return b.version }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
