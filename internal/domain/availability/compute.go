package availability

import (
	"errors"
	"sort"
	"time"

	"courtside/internal/domain/promotion"
	"courtside/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEndBeforeStart      = errors.New("end date is before start date")
	ErrRangeTooLong        = errors.New("date range exceeds 31 days")
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")
)

const maxRangeDays = 31

// Input is an immutable snapshot of the three time sources merged into
// the grid. The surrounding query layer fetches it atomically; Compute
// itself is pure and side-effect free.
type Input struct {
	CourtID         uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	SlotDurationMin int
	Templates       []*schedule.WeeklyTemplate
	Promotions      []*promotion.Promotion
	BookedLines     []BookedLine
}

// Compute merges weekly templates, promotions and existing bookings
// into a per-day, per-slot grid. Same inputs always yield the same
// grid: the input collections are re-sorted internally, so the result
// does not depend on the order a query returned them in.
func Compute(in Input) (*Grid, error) {
	if in.SlotDurationMin <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	start := dateOf(in.StartDate)
	end := dateOf(in.EndDate)
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	if int(end.Sub(start).Hours()/24) > maxRangeDays {
		return nil, ErrRangeTooLong
	}

	templates := sortedTemplates(in.CourtID, in.Templates)
	promotions := sortedPromotions(in.CourtID, in.Promotions)
	booked := sortedBookedLines(in.CourtID, in.BookedLines)

	grid := &Grid{CourtID: in.CourtID}
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		weekday := schedule.ISOWeekday(date)
		day := DaySchedule{Date: date, Weekday: weekday}

		for _, tpl := range templates {
			if !tpl.AppliesOn(weekday) {
				continue
			}
			for _, interval := range tpl.Slots(in.SlotDurationMin) {
				day.Slots = append(day.Slots, buildSlot(date, weekday, tpl, interval, promotions, booked))
			}
		}

		grid.Days = append(grid.Days, day)
	}
	return grid, nil
}

func buildSlot(
	date time.Time,
	weekday int,
	tpl *schedule.WeeklyTemplate,
	interval schedule.SlotInterval,
	promotions []*promotion.Promotion,
	booked []BookedLine,
) Slot {
	slot := Slot{
		Date:    date,
		Weekday: weekday,
		Start:   interval.Start,
		End:     interval.End,
		Status:  SlotAvailable,
		Price:   tpl.PricePerSlot(),
	}

	// Maintenance wins over everything: the slot is not bookable, so
	// occupancy and promotions are not evaluated. The price is still
	// reported.
	if tpl.IsMaintenance() {
		slot.Status = SlotMaintenance
		return slot
	}

	for _, line := range booked {
		if sameDate(line.Date, date) && interval.Overlaps(line.Start, line.End) {
			renter := line.RenterID
			slot.Status = SlotBooked
			slot.OccupantID = &renter
			break
		}
	}

	// Promotions attach on booked slots too so the price history stays
	// visible; promotions is pre-sorted so the first match is the
	// deterministic winner.
	for _, promo := range promotions {
		if promo.AppliesOn(date) {
			slot.Promotion = &PromotionInfo{
				ID:              promo.ID(),
				Description:     promo.Description(),
				Kind:            promo.Kind(),
				Value:           promo.Value(),
				DiscountedPrice: promo.Apply(slot.Price),
			}
			break
		}
	}

	return slot
}

// sortedTemplates fixes the processing order to (start time, id). Two
// templates covering the same weekday are both emitted; no precedence
// rule exists between them.
func sortedTemplates(courtID uuid.UUID, in []*schedule.WeeklyTemplate) []*schedule.WeeklyTemplate {
	out := make([]*schedule.WeeklyTemplate, 0, len(in))
	for _, t := range in {
		if t.CourtID() == courtID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start() != out[j].Start() {
			return out[i].Start().Before(out[j].Start())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

// sortedPromotions orders candidates newest-first (createdAt, then id
// descending) so the tie-break between concurrently valid promotions is
// deterministic: the most recently created one wins.
func sortedPromotions(courtID uuid.UUID, in []*promotion.Promotion) []*promotion.Promotion {
	out := make([]*promotion.Promotion, 0, len(in))
	for _, p := range in {
		if p.CourtID() == courtID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().After(out[j].CreatedAt())
		}
		return out[i].ID().String() > out[j].ID().String()
	})
	return out
}

func sortedBookedLines(courtID uuid.UUID, in []BookedLine) []BookedLine {
	out := make([]BookedLine, 0, len(in))
	for _, l := range in {
		if l.CourtID == courtID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Start != out[j].Start {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].BookingID.String() < out[j].BookingID.String()
	})
	return out
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
