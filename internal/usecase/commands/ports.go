package commands

import (
	"context"
	"time"

	"courtside/internal/domain/booking"
	"courtside/internal/domain/court"
	"courtside/internal/domain/promotion"
	"courtside/internal/domain/schedule"
	"courtside/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository.

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// FindByID rehydrates the full aggregate including its lines.
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// Update persists the aggregate with an optimistic version check;
	// a stale version surfaces as a conflict kind.
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, t *schedule.WeeklyTemplate) error
	ListByCourt(ctx context.Context, courtID uuid.UUID) ([]*schedule.WeeklyTemplate, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
