package availability

import (
	"time"

	"courtside/internal/domain/money"
	"courtside/internal/domain/promotion"
	"courtside/internal/domain/schedule"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotBooked      SlotStatus = "booked"
	SlotMaintenance SlotStatus = "maintenance"
)

func (s SlotStatus) String() string {
	return string(s)
}

// BookedLine is the slice of an existing non-cancelled booking the
// computation needs: which court-time interval is taken on which date,
// and by whom.
type BookedLine struct {
	BookingID uuid.UUID
	RenterID  uuid.UUID
	CourtID   uuid.UUID
	Date      time.Time
	Start     schedule.TimeOfDay
	End       schedule.TimeOfDay
}

// PromotionInfo is the discount descriptor attached to a slot.
type PromotionInfo struct {
	ID              uuid.UUID
	Description     string
	Kind            promotion.Kind
	Value           float64
	DiscountedPrice money.Money
}

// Slot is one grid cell: a bookable interval on a concrete date.
type Slot struct {
	Date       time.Time
	Weekday    int
	Start      schedule.TimeOfDay
	End        schedule.TimeOfDay
	Status     SlotStatus
	Price      money.Money
	Promotion  *PromotionInfo
	OccupantID *uuid.UUID
}

// DaySchedule is the per-date slice of the grid.
type DaySchedule struct {
	Date    time.Time
	Weekday int
	Slots   []Slot
}

// Grid is the availability result for a court over a date range.
type Grid struct {
	CourtID uuid.UUID
	Days    []DaySchedule
}
