package booking

import (
	"courtside/internal/domain/money"
	"courtside/internal/domain/schedule"

	"github.com/google/uuid"
)

// Line is one court-time interval inside a booking. Lines are owned
// exclusively by their booking; the back-reference is by id only.
type Line struct {
	id        uuid.UUID
	bookingID uuid.UUID
	courtID   uuid.UUID
	start     schedule.TimeOfDay
	end       schedule.TimeOfDay
	price     money.Money
}

func newLine(bookingID, courtID uuid.UUID, start, end schedule.TimeOfDay, price money.Money) *Line {
	return &Line{
		id:        uuid.New(),
		bookingID: bookingID,
		courtID:   courtID,
		start:     start,
		end:       end,
		price:     price,
	}
}

func ReconstructLine(id, bookingID, courtID uuid.UUID, start, end schedule.TimeOfDay, price money.Money) *Line {
	return &Line{
		id:        id,
		bookingID: bookingID,
		courtID:   courtID,
		start:     start,
		end:       end,
		price:     price,
	}
}

func (l *Line) Overlaps(start, end schedule.TimeOfDay) bool {
	return l.start.Before(end) && start.Before(l.end)
}

func (l *Line) ID() uuid.UUID             { return l.id }
func (l *Line) BookingID() uuid.UUID      { return l.bookingID }
func (l *Line) CourtID() uuid.UUID        { return l.courtID }
func (l *Line) Start() schedule.TimeOfDay { return l.start }
func (l *Line) End() schedule.TimeOfDay   { return l.end }
func (l *Line) Price() money.Money        { return l.price }
