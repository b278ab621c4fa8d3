//go:build unit || e2e

package builder

import (
	"time"

	"courtside/internal/domain/booking"
	"courtside/internal/domain/schedule"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RenterID uuid.UUID
	CourtID  uuid.UUID
	Date     time.Time
	Note     string

	Templates []*schedule.WeeklyTemplate
}

// NewBookingBuilder defaults to a Monday booking on a court priced at
// 100.00 per hour slot, weekdays 1-7, 08:00-22:00.
func NewBookingBuilder() *BookingBuilder {
	courtID := uuid.New()
	template := NewTemplateBuilder().With(func(b *TemplateBuilder) {
		b.CourtID = courtID
		b.Weekdays = []int{1, 2, 3, 4, 5, 6, 7}
		b.StartMin = 8 * 60
		b.EndMin = 22 * 60
		b.PriceCents = 100_00
	}).MustBuildDomain()

	return &BookingBuilder{
		RenterID:  uuid.New(),
		CourtID:   courtID,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // a Monday
		Note:      "",
		Templates: []*schedule.WeeklyTemplate{template},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) RatePlan() schedule.RatePlan {
	return schedule.NewRatePlan(b.Templates)
}

// BuildDomain creates the booking and adds one line for [startMin,endMin)
// priced from the builder's templates at 60-minute slots.
func (b *BookingBuilder) BuildDomain(startMin, endMin int) (*booking.Booking, error) {
	bk := booking.NewBooking(b.RenterID, b.Date, b.Note)

	start, err := schedule.NewTimeOfDay(startMin)
	if err != nil {
		return nil, err
	}
	end, err := schedule.NewTimeOfDay(endMin)
	if err != nil {
		return nil, err
	}

	if _, err := bk.AddLine(b.CourtID, start, end, b.RatePlan(), 60); err != nil {
		return nil, err
	}
	return bk, nil
}

func (b *BookingBuilder) MustBuildDomain(startMin, endMin int) *booking.Booking {
	bk, err := b.BuildDomain(startMin, endMin)
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildView produces the read model the query side would return for a
// fresh pending booking with a single 10:00-12:00 line.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now().UTC()
	return &queries.BookingView{
		ID:                    uuid.New(),
		RenterID:              b.RenterID,
		Date:                  b.Date,
		Status:                "pending_payment",
		TotalPriceCents:       200_00,
		TotalPaidCents:        0,
		RemainingBalanceCents: 200_00,
		Note:                  b.Note,
		Lines: []queries.BookingLineView{
			{
				ID:           uuid.New(),
				CourtID:      b.CourtID,
				CourtName:    "Center Court",
				CourtOwnerID: uuid.New(),
				StartMin:     10 * 60,
				EndMin:       12 * 60,
				PriceCents:   200_00,
			},
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BuildCreateRequestDTO mirrors BuildView's booking as the wire request.
func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"date": b.Date.Format("2006-01-02"),
		"note": b.Note,
		"lines": []map[string]any{
			{
				"court_id":  b.CourtID.String(),
				"start_min": 10 * 60,
				"end_min":   12 * 60,
			},
		},
	}
}
