package commands

import (
	"context"
	"encoding/json"
	"time"

	"courtside/internal/domain/booking"
	"courtside/internal/domain/court"
	"courtside/internal/domain/money"
	"courtside/internal/domain/schedule"
	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/infra/db"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/queries"
	"courtside/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCourtNotFound           = errs.New("court not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrForbidden               = errs.New("actor is not allowed to perform this operation")
	ErrNoLines                 = errs.New("booking requires at least one line")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrConcurrentUpdate        = errs.New("booking was modified concurrently")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const notificationKindEmail = "email"

type LineParams struct {
	CourtID  uuid.UUID
	StartMin int
	EndMin   int
}

type CreateBookingParams struct {
	Date  time.Time
	Note  string
	Lines []LineParams
}

type CancelResult struct {
	RefundCents int64
	NewStatus   string
}

type BookingCommands interface {
	Create(ctx context.Context, actor queries.Actor, params CreateBookingParams) (*queries.BookingView, error)
	Deposit(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, amountCents int64) (*queries.BookingView, error)
	Pay(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, amountCents int64) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, reason string, requestedAt time.Time) (*CancelResult, error)
	Confirm(ctx context.Context, actor queries.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo      BookingRepository
	courtRepo        CourtRepository
	templateRepo     TemplateRepository
	notificationRepo NotificationRepository
	bookingReads     queries.BookingReadStore
	refundCalc       booking.RefundCalculator
	pool             *pgxpool.Pool
	clock            clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	templateRepo TemplateRepository,
	notificationRepo NotificationRepository,
	bookingReads queries.BookingReadStore,
	refundCalc booking.RefundCalculator,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:      bookingRepo,
		courtRepo:        courtRepo,
		templateRepo:     templateRepo,
		notificationRepo: notificationRepo,
		bookingReads:     bookingReads,
		refundCalc:       refundCalc,
		pool:             pool,
		clock:            clock,
	}
}

// Create builds the booking and its initial lines and persists them in
// one transaction: a failure on any line leaves no partial booking.
func (c *bookingCommandsImpl) Create(ctx context.Context, actor queries.Actor, params CreateBookingParams) (*queries.BookingView, error) {
	if len(params.Lines) == 0 {
		return nil, ErrNoLines
	}

	b := booking.NewBooking(actor.ID, params.Date, params.Note)

	plans := map[uuid.UUID]ratedCourt{}
	for _, lp := range params.Lines {
		rated, ok := plans[lp.CourtID]
		if !ok {
			var err error
			rated, err = c.loadRatedCourt(ctx, lp.CourtID)
			if err != nil {
				return nil, err
			}
			plans[lp.CourtID] = rated
		}

		start, end, err := lineTimes(lp)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		if _, err := b.AddLine(lp.CourtID, start, end, rated.plan, rated.court.SlotDurationMin()); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	id, err := shared.RunInTxWithRetry(ctx, c.pool, 3, func(tx db.DBTX) (uuid.UUID, error) {
		if err := c.bookingRepo.Create(ctx, tx, b); err != nil {
			return uuid.Nil, c.mapRepoErr(err)
		}
		return b.ID(), nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

func (c *bookingCommandsImpl) Deposit(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, amountCents int64) (*queries.BookingView, error) {
	amount, err := money.New(amountCents)
	if err != nil {
		return nil, errs.Mark(booking.ErrNonPositiveAmount, ErrDomainValidation)
	}

	return c.mutate(ctx, bookingID, func(b *booking.Booking, policy court.Policy) error {
		if err := requireRenter(actor, b); err != nil {
			return err
		}
		if err := b.MakeDeposit(amount, policy.MinDepositPercent, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) Pay(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, amountCents int64) (*queries.BookingView, error) {
	amount, err := money.New(amountCents)
	if err != nil {
		return nil, errs.Mark(booking.ErrNonPositiveAmount, ErrDomainValidation)
	}

	return c.mutate(ctx, bookingID, func(b *booking.Booking, _ court.Policy) error {
		if err := requireRenter(actor, b); err != nil {
			return err
		}
		if err := b.MakePayment(amount, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, reason string, requestedAt time.Time) (*CancelResult, error) {
	var result *CancelResult

	_, err := shared.RunInTxWithRetry(ctx, c.pool, 3, func(tx db.DBTX) (struct{}, error) {
		var zero struct{}

		b, err := c.bookingRepo.FindByID(ctx, tx, bookingID)
		if err != nil {
			return zero, c.mapRepoErr(err)
		}

		bookedCourt, err := c.bookingCourt(ctx, b)
		if err != nil {
			return zero, err
		}

		cancelActor, err := resolveCancelActor(actor, b, bookedCourt)
		if err != nil {
			return zero, err
		}

		refund := c.refundCalc.Refund(b, bookedCourt.Policy(), cancelActor, requestedAt)

		if err := b.Cancel(reason, requestedAt); err != nil {
			return zero, errs.Mark(err, ErrDomainValidation)
		}

		if err := c.bookingRepo.Update(ctx, tx, b); err != nil {
			return zero, c.mapRepoErr(err)
		}
		if err := c.persistEvents(ctx, tx, b); err != nil {
			return zero, err
		}

		result = &CancelResult{
			RefundCents: refund.Cents(),
			NewStatus:   b.Status().String(),
		}
		return zero, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, actor queries.Actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	return c.mutate(ctx, bookingID, func(b *booking.Booking, _ court.Policy) error {
		if err := c.requireOwnerSide(ctx, actor, b); err != nil {
			return err
		}
		if err := b.Confirm(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, actor queries.Actor, bookingID uuid.UUID, newStatus string) (*queries.BookingView, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	status, err := booking.NewStatus(newStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return c.mutate(ctx, bookingID, func(b *booking.Booking, _ court.Policy) error {
		if err := b.UpdateStatus(status); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return nil
	})
}

// mutate runs the load-apply-save cycle for a single booking under the
// optimistic version check, then reads the fresh view back.
func (c *bookingCommandsImpl) mutate(ctx context.Context, bookingID uuid.UUID, apply func(b *booking.Booking, policy court.Policy) error) (*queries.BookingView, error) {
	_, err := shared.RunInTxWithRetry(ctx, c.pool, 3, func(tx db.DBTX) (struct{}, error) {
		var zero struct{}

		b, err := c.bookingRepo.FindByID(ctx, tx, bookingID)
		if err != nil {
			return zero, c.mapRepoErr(err)
		}

		bookedCourt, err := c.bookingCourt(ctx, b)
		if err != nil {
			return zero, err
		}

		if err := apply(b, bookedCourt.Policy()); err != nil {
			return zero, err
		}

		if err := c.bookingRepo.Update(ctx, tx, b); err != nil {
			return zero, c.mapRepoErr(err)
		}
		return zero, c.persistEvents(ctx, tx, b)
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, bookingID)
}

type ratedCourt struct {
	court *court.Court
	plan  schedule.RatePlan
}

func (c *bookingCommandsImpl) loadRatedCourt(ctx context.Context, courtID uuid.UUID) (ratedCourt, error) {
	courtEntity, err := c.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ratedCourt{}, ErrCourtNotFound
		}
		return ratedCourt{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	templates, err := c.templateRepo.ListByCourt(ctx, courtID)
	if err != nil {
		return ratedCourt{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return ratedCourt{court: courtEntity, plan: schedule.NewRatePlan(templates)}, nil
}

// bookingCourt resolves the court whose policy governs the booking's
// money rules. Lines always share a court in practice; the first line
// is authoritative.
func (c *bookingCommandsImpl) bookingCourt(ctx context.Context, b *booking.Booking) (*court.Court, error) {
	lines := b.Lines()
	if len(lines) == 0 {
		return nil, errs.Mark(booking.ErrLineNotFound, ErrDomainValidation)
	}

	courtEntity, err := c.courtRepo.FindByID(ctx, lines[0].CourtID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return courtEntity, nil
}

func (c *bookingCommandsImpl) requireOwnerSide(ctx context.Context, actor queries.Actor, b *booking.Booking) error {
	if actor.Role == user.RoleAdmin {
		return nil
	}

	bookedCourt, err := c.bookingCourt(ctx, b)
	if err != nil {
		return err
	}
	if !bookedCourt.IsOwnedBy(actor.ID) {
		return ErrForbidden
	}
	return nil
}

func requireRenter(actor queries.Actor, b *booking.Booking) error {
	if actor.Role == user.RoleAdmin || b.RenterID() == actor.ID {
		return nil
	}
	return ErrForbidden
}

// resolveCancelActor authorizes the cancellation and classifies it as
// renter- or owner-initiated for the refund rule.
func resolveCancelActor(actor queries.Actor, b *booking.Booking, bookedCourt *court.Court) (booking.CancelActor, error) {
	switch {
	case b.RenterID() == actor.ID:
		return booking.CancelByRenter, nil
	case bookedCourt.IsOwnedBy(actor.ID), actor.Role == user.RoleAdmin:
		return booking.CancelByOwner, nil
	default:
		return "", ErrForbidden
	}
}

func (c *bookingCommandsImpl) persistEvents(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	for _, ev := range b.PullEvents() {
		payload, err := json.Marshal(eventPayload(ev))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.notificationRepo.CreateJob(ctx, tx, notificationKindEmail, ev.EventTopic(), payload, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func eventPayload(ev booking.Event) map[string]any {
	switch e := ev.(type) {
	case booking.DepositMade:
		return map[string]any{
			"booking_id":              e.BookingID,
			"amount_cents":            e.Amount.Cents(),
			"remaining_balance_cents": e.RemainingBalance.Cents(),
			"occurred_at":             e.OccurredAt,
		}
	case booking.PaymentMade:
		return map[string]any{
			"booking_id":              e.BookingID,
			"amount_cents":            e.Amount.Cents(),
			"remaining_balance_cents": e.RemainingBalance.Cents(),
			"occurred_at":             e.OccurredAt,
		}
	case booking.Cancelled:
		return map[string]any{
			"booking_id":  e.BookingID,
			"reason":      e.Reason,
			"occurred_at": e.OccurredAt,
		}
	default:
		return map[string]any{"topic": ev.EventTopic()}
	}
}

func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookingReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case infra.IsKind(err, infra.KindConflict):
		return ErrConcurrentUpdate
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func lineTimes(lp LineParams) (schedule.TimeOfDay, schedule.TimeOfDay, error) {
	start, err := schedule.NewTimeOfDay(lp.StartMin)
	if err != nil {
		return schedule.TimeOfDay{}, schedule.TimeOfDay{}, err
	}
	end, err := schedule.NewTimeOfDay(lp.EndMin)
	if err != nil {
		return schedule.TimeOfDay{}, schedule.TimeOfDay{}, err
	}
	return start, end, nil
}
