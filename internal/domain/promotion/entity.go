package promotion

import (
	"errors"
	"time"

	"courtside/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind       = errors.New("invalid discount kind")
	ErrInvalidPercentage = errors.New("percentage discount must be between 0 and 100")
	ErrNegativeDiscount  = errors.New("discount amount cannot be negative")
	ErrInvalidDateRange  = errors.New("valid-from must not be after valid-to")
)

type Kind string

const (
	KindPercentage  Kind = "percentage"
	KindFixedAmount Kind = "fixed_amount"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixedAmount:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// Promotion is a discount rule bound to a court and a closed calendar
// date interval (validFrom and validTo are both inclusive).
type Promotion struct {
	id          uuid.UUID
	courtID     uuid.UUID
	description string
	kind        Kind
	value       float64
	validFrom   time.Time
	validTo     time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPromotion(
	id uuid.UUID,
	courtID uuid.UUID,
	description string,
	kind Kind,
	value float64,
	validFrom, validTo time.Time,
) (*Promotion, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if kind == KindPercentage && (value < 0 || value > 100) {
		return nil, ErrInvalidPercentage
	}
	if kind == KindFixedAmount && value < 0 {
		return nil, ErrNegativeDiscount
	}
	if dateOf(validFrom).After(dateOf(validTo)) {
		return nil, ErrInvalidDateRange
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Promotion{
		id:          id,
		courtID:     courtID,
		description: description,
		kind:        kind,
		value:       value,
		validFrom:   dateOf(validFrom),
		validTo:     dateOf(validTo),
	}, nil
}

func ReconstructPromotion(
	id, courtID uuid.UUID,
	description string,
	kind Kind,
	value float64,
	validFrom, validTo time.Time,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:          id,
		courtID:     courtID,
		description: description,
		kind:        kind,
		value:       value,
		validFrom:   dateOf(validFrom),
		validTo:     dateOf(validTo),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// AppliesOn reports whether the calendar date falls inside the inclusive
// validity interval. Time-of-day components are ignored.
func (p *Promotion) AppliesOn(date time.Time) bool {
	d := dateOf(date)
	return !d.Before(p.validFrom) && !d.After(p.validTo)
}

// Apply discounts the given price, flooring at zero.
func (p *Promotion) Apply(base money.Money) money.Money {
	switch p.kind {
	case KindPercentage:
		return base.Sub(base.Percent(p.value))
	case KindFixedAmount:
		return base.Sub(money.MustNew(int64(p.value * 100)))
	default:
		return base
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p *Promotion) ID() uuid.UUID        { return p.id }
func (p *Promotion) CourtID() uuid.UUID   { return p.courtID }
func (p *Promotion) Description() string  { return p.description }
func (p *Promotion) Kind() Kind           { return p.kind }
func (p *Promotion) Value() float64       { return p.value }
func (p *Promotion) ValidFrom() time.Time { return p.validFrom }
func (p *Promotion) ValidTo() time.Time   { return p.validTo }
func (p *Promotion) CreatedAt() time.Time { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time { return p.updatedAt }
