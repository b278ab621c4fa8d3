package queries

import (
	"context"

	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("actor is not allowed to access this booking")
)

// Actor is the authenticated principal a query runs on behalf of.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if !canSee(actor, view) {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}

// A booking is visible to its renter, to the owner of any court on its
// lines, and to admins.
func canSee(actor Actor, view *BookingView) bool {
	if actor.Role == user.RoleAdmin {
		return true
	}
	if view.RenterID == actor.ID {
		return true
	}
	for _, line := range view.Lines {
		if line.CourtOwnerID == actor.ID {
			return true
		}
	}
	return false
}
