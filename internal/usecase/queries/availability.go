package queries

import (
	"context"
	"errors"
	"time"

	"courtside/internal/domain/availability"
	"courtside/internal/domain/court"
	"courtside/internal/domain/promotion"
	"courtside/internal/domain/schedule"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCourtNotFound = errs.New("court not found")
	ErrInvalidRange  = errs.New("invalid date range")
)

// AvailabilitySnapshot is the consistent picture of the three time
// sources for one court and range, fetched in a single read-only
// transaction by the read store.
type AvailabilitySnapshot struct {
	Policy      court.Policy
	Templates   []*schedule.WeeklyTemplate
	Promotions  []*promotion.Promotion
	BookedLines []availability.BookedLine
}

type AvailabilityReadStore interface {
	FetchSnapshot(ctx context.Context, courtID uuid.UUID, from, to time.Time) (*AvailabilitySnapshot, error)
}

type AvailabilityQueries interface {
	GetGrid(ctx context.Context, courtID uuid.UUID, from, to time.Time) (*AvailabilityGridView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) GetGrid(ctx context.Context, courtID uuid.UUID, from, to time.Time) (*AvailabilityGridView, error) {
	snapshot, err := q.store.FetchSnapshot(ctx, courtID, from, to)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Wrap(err, "failed to fetch availability snapshot")
	}

	grid, err := availability.Compute(availability.Input{
		CourtID:         courtID,
		StartDate:       from,
		EndDate:         to,
		SlotDurationMin: snapshot.Policy.SlotDurationMin,
		Templates:       snapshot.Templates,
		Promotions:      snapshot.Promotions,
		BookedLines:     snapshot.BookedLines,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrEndBeforeStart),
			errors.Is(err, availability.ErrRangeTooLong),
			errors.Is(err, availability.ErrInvalidSlotDuration):
			return nil, errs.Mark(err, ErrInvalidRange)
		default:
			return nil, err
		}
	}

	return toGridView(grid, from, to), nil
}

func toGridView(grid *availability.Grid, from, to time.Time) *AvailabilityGridView {
	view := &AvailabilityGridView{
		CourtID: grid.CourtID,
		From:    from,
		To:      to,
		Days:    make([]DayScheduleView, 0, len(grid.Days)),
	}

	for _, day := range grid.Days {
		dayView := DayScheduleView{
			Date:    day.Date,
			Weekday: day.Weekday,
			Slots:   make([]SlotView, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			dayView.Slots = append(dayView.Slots, toSlotView(slot))
		}
		view.Days = append(view.Days, dayView)
	}
	return view
}

func toSlotView(slot availability.Slot) SlotView {
	sv := SlotView{
		Date:       slot.Date,
		Weekday:    slot.Weekday,
		StartMin:   slot.Start.Minutes(),
		EndMin:     slot.End.Minutes(),
		Status:     slot.Status.String(),
		PriceCents: slot.Price.Cents(),
		OccupantID: slot.OccupantID,
	}
	if slot.Promotion != nil {
		sv.Promotion = &SlotPromotionView{
			ID:                   slot.Promotion.ID,
			Description:          slot.Promotion.Description,
			Kind:                 slot.Promotion.Kind.String(),
			Value:                slot.Promotion.Value,
			DiscountedPriceCents: slot.Promotion.DiscountedPrice.Cents(),
		}
	}
	return sv
}
