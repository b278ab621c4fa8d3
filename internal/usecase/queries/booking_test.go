//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/usecase/queries"
	queriesmock "courtside/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueriesGetByID(t *testing.T) {
	renterID := uuid.New()
	ownerID := uuid.New()
	bookingID := uuid.New()

	view := &queries.BookingView{
		ID:       bookingID,
		RenterID: renterID,
		Status:   "pending_payment",
		Lines: []queries.BookingLineView{
			{ID: uuid.New(), CourtID: uuid.New(), CourtOwnerID: ownerID},
		},
	}

	visibility := []struct {
		name  string
		actor queries.Actor
		errIs error
	}{
		{name: "renter sees own booking", actor: queries.Actor{ID: renterID, Role: user.RoleRenter}},
		{name: "court owner sees booking on their court", actor: queries.Actor{ID: ownerID, Role: user.RoleOwner}},
		{name: "admin sees everything", actor: queries.Actor{ID: uuid.New(), Role: user.RoleAdmin}},
		{name: "unrelated renter is rejected", actor: queries.Actor{ID: uuid.New(), Role: user.RoleRenter}, errIs: queries.ErrForbidden},
		{name: "unrelated owner is rejected", actor: queries.Actor{ID: uuid.New(), Role: user.RoleOwner}, errIs: queries.ErrForbidden},
	}

	for _, tt := range visibility {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), bookingID).Return(view, nil)

			q := queries.NewBookingQueries(store)
			got, err := q.GetByID(context.Background(), tt.actor, bookingID)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, got.ID)
		})
	}

	t.Run("missing booking maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no rows"))

		q := queries.NewBookingQueries(store)
		_, err := q.GetByID(context.Background(), queries.Actor{ID: renterID, Role: user.RoleRenter}, bookingID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("store failure is wrapped, not swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		storeErr := errors.New("connection reset")
		store.EXPECT().FindByID(gomock.Any(), bookingID).Return(nil, storeErr)

		q := queries.NewBookingQueries(store)
		_, err := q.GetByID(context.Background(), queries.Actor{ID: renterID, Role: user.RoleRenter}, bookingID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrBookingNotFound)
	})
}
