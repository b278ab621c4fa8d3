package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourtName        = errors.New("court name cannot be empty")
	ErrCourtNameTooLong      = errors.New("court name is too long (max 255 characters)")
	ErrInvalidSlotDuration   = errors.New("slot duration must be positive")
	ErrInvalidPercentage     = errors.New("percentage must be between 0 and 100")
	ErrNegativeCancelWindow  = errors.New("cancellation window cannot be negative")
	ErrSlotDurationTooCoarse = errors.New("slot duration must not exceed 24 hours")
)

const MaxCourtNameLength = 255

// Court carries the booking policy for a single court: the slot
// granularity of its schedule grid, the refund rules applied on renter
// cancellation and the minimum deposit required to hold a booking.
type Court struct {
	id                      uuid.UUID
	ownerID                 uuid.UUID
	name                    string
	slotDurationMin         int
	cancellationWindowHours int
	refundPercent           float64
	minDepositPercent       float64
	createdAt               time.Time
	updatedAt               time.Time
}

func NewCourt(
	id uuid.UUID,
	ownerID uuid.UUID,
	name string,
	slotDurationMin int,
	cancellationWindowHours int,
	refundPercent float64,
	minDepositPercent float64,
) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return nil, ErrCourtNameTooLong
	}
	if slotDurationMin <= 0 {
		return nil, ErrInvalidSlotDuration
	}
	if slotDurationMin > 24*60 {
		return nil, ErrSlotDurationTooCoarse
	}
	if cancellationWindowHours < 0 {
		return nil, ErrNegativeCancelWindow
	}
	if refundPercent < 0 || refundPercent > 100 {
		return nil, ErrInvalidPercentage
	}
	if minDepositPercent < 0 || minDepositPercent > 100 {
		return nil, ErrInvalidPercentage
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Court{
		id:                      id,
		ownerID:                 ownerID,
		name:                    name,
		slotDurationMin:         slotDurationMin,
		cancellationWindowHours: cancellationWindowHours,
		refundPercent:           refundPercent,
		minDepositPercent:       minDepositPercent,
	}, nil
}

func ReconstructCourt(
	id, ownerID uuid.UUID,
	name string,
	slotDurationMin, cancellationWindowHours int,
	refundPercent, minDepositPercent float64,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:                      id,
		ownerID:                 ownerID,
		name:                    name,
		slotDurationMin:         slotDurationMin,
		cancellationWindowHours: cancellationWindowHours,
		refundPercent:           refundPercent,
		minDepositPercent:       minDepositPercent,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}
}

// Policy is the snapshot consumed by the availability and booking
// usecases; it decouples them from the full court entity.
type Policy struct {
	SlotDurationMin         int
	CancellationWindowHours int
	RefundPercent           float64
	MinDepositPercent       float64
}

func (c *Court) Policy() Policy {
	return Policy{
		SlotDurationMin:         c.slotDurationMin,
		CancellationWindowHours: c.cancellationWindowHours,
		RefundPercent:           c.refundPercent,
		MinDepositPercent:       c.minDepositPercent,
	}
}

func (c *Court) IsOwnedBy(userID uuid.UUID) bool {
	return c.ownerID == userID
}

func (c *Court) ID() uuid.UUID                { return c.id }
func (c *Court) OwnerID() uuid.UUID           { return c.ownerID }
func (c *Court) Name() string                 { return c.name }
func (c *Court) SlotDurationMin() int         { return c.slotDurationMin }
func (c *Court) CancellationWindowHours() int { return c.cancellationWindowHours }
func (c *Court) RefundPercent() float64       { return c.refundPercent }
func (c *Court) MinDepositPercent() float64   { return c.minDepositPercent }
func (c *Court) CreatedAt() time.Time         { return c.createdAt }
func (c *Court) UpdatedAt() time.Time         { return c.updatedAt }
