package schedule

import (
	"errors"
	"time"

	"courtside/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange = errors.New("template start must be before end")
	ErrInvalidStatus    = errors.New("invalid template status")
)

type TemplateStatus string

const (
	StatusAvailable   TemplateStatus = "available"
	StatusMaintenance TemplateStatus = "maintenance"
)

func (s TemplateStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance:
		return true
	default:
		return false
	}
}

func (s TemplateStatus) String() string {
	return string(s)
}

func NewTemplateStatus(s string) (TemplateStatus, error) {
	status := TemplateStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// WeeklyTemplate is a recurring availability rule: on the given weekdays
// the court opens from start to end at the given price per slot.
type WeeklyTemplate struct {
	id           uuid.UUID
	courtID      uuid.UUID
	weekdays     WeekdaySet
	start        TimeOfDay
	end          TimeOfDay
	pricePerSlot money.Money
	status       TemplateStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewWeeklyTemplate(
	id uuid.UUID,
	courtID uuid.UUID,
	weekdays WeekdaySet,
	start, end TimeOfDay,
	pricePerSlot money.Money,
	status TemplateStatus,
) (*WeeklyTemplate, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if len(weekdays.Days()) == 0 {
		return nil, ErrEmptyWeekdaySet
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &WeeklyTemplate{
		id:           id,
		courtID:      courtID,
		weekdays:     weekdays,
		start:        start,
		end:          end,
		pricePerSlot: pricePerSlot,
		status:       status,
	}, nil
}

func ReconstructWeeklyTemplate(
	id, courtID uuid.UUID,
	weekdays WeekdaySet,
	start, end TimeOfDay,
	pricePerSlot money.Money,
	status TemplateStatus,
	createdAt, updatedAt time.Time,
) *WeeklyTemplate {
	return &WeeklyTemplate{
		id:           id,
		courtID:      courtID,
		weekdays:     weekdays,
		start:        start,
		end:          end,
		pricePerSlot: pricePerSlot,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (t *WeeklyTemplate) AppliesOn(weekday int) bool {
	return t.weekdays.Contains(weekday)
}

func (t *WeeklyTemplate) IsMaintenance() bool {
	return t.status == StatusMaintenance
}

// SlotInterval is one bookable interval of exactly the slot duration.
type SlotInterval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (si SlotInterval) Overlaps(start, end TimeOfDay) bool {
	return si.Start.Before(end) && start.Before(si.End)
}

// Slots tiles [start,end) into consecutive intervals of slotDurationMin
// minutes. A trailing remainder shorter than a full slot is dropped.
func (t *WeeklyTemplate) Slots(slotDurationMin int) []SlotInterval {
	if slotDurationMin <= 0 {
		return nil
	}

	var slots []SlotInterval
	for cur := t.start; !cur.Add(slotDurationMin).After(t.end); cur = cur.Add(slotDurationMin) {
		slots = append(slots, SlotInterval{Start: cur, End: cur.Add(slotDurationMin)})
	}
	return slots
}

func (t *WeeklyTemplate) ID() uuid.UUID             { return t.id }
func (t *WeeklyTemplate) CourtID() uuid.UUID        { return t.courtID }
func (t *WeeklyTemplate) Weekdays() WeekdaySet      { return t.weekdays }
func (t *WeeklyTemplate) Start() TimeOfDay          { return t.start }
func (t *WeeklyTemplate) End() TimeOfDay            { return t.end }
func (t *WeeklyTemplate) PricePerSlot() money.Money { return t.pricePerSlot }
func (t *WeeklyTemplate) Status() TemplateStatus    { return t.status }
func (t *WeeklyTemplate) CreatedAt() time.Time      { return t.createdAt }
func (t *WeeklyTemplate) UpdatedAt() time.Time      { return t.updatedAt }
