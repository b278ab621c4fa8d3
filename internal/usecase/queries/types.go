package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models for the query side. Money travels as integer cents and is
// formatted to decimal at the response layer; times of day travel as
// minutes since midnight.

type SlotView struct {
	Date       time.Time
	Weekday    int
	StartMin   int
	EndMin     int
	Status     string
	PriceCents int64
	Promotion  *SlotPromotionView
	OccupantID *uuid.UUID
}

type SlotPromotionView struct {
	ID                   uuid.UUID
	Description          string
	Kind                 string
	Value                float64
	DiscountedPriceCents int64
}

type DayScheduleView struct {
	Date    time.Time
	Weekday int
	Slots   []SlotView
}

type AvailabilityGridView struct {
	CourtID uuid.UUID
	From    time.Time
	To      time.Time
	Days    []DayScheduleView
}

type BookingLineView struct {
	ID           uuid.UUID
	CourtID      uuid.UUID
	CourtName    string
	CourtOwnerID uuid.UUID
	StartMin     int
	EndMin       int
	PriceCents   int64
}

type BookingView struct {
	ID                    uuid.UUID
	RenterID              uuid.UUID
	Date                  time.Time
	Status                string
	TotalPriceCents       int64
	TotalPaidCents        int64
	RemainingBalanceCents int64
	InitialDepositCents   int64
	Note                  string
	CancellationReason    *string
	CancellationTime      *time.Time
	Lines                 []BookingLineView
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type BookingListItem struct {
	ID              uuid.UUID
	Date            time.Time
	Status          string
	TotalPriceCents int64
	TotalPaidCents  int64
	LineCount       int
	CreatedAt       time.Time
}

type TemplateView struct {
	ID                uuid.UUID
	CourtID           uuid.UUID
	Weekdays          []int
	StartMin          int
	EndMin            int
	PricePerSlotCents int64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PromotionView struct {
	ID          uuid.UUID
	CourtID     uuid.UUID
	Description string
	Kind        string
	Value       float64
	ValidFrom   time.Time
	ValidTo     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CourtView struct {
	ID                      uuid.UUID
	OwnerID                 uuid.UUID
	Name                    string
	SlotDurationMin         int
	CancellationWindowHours int
	RefundPercent           float64
	MinDepositPercent       float64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type AuthorizedUserView struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}
