//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"courtside/internal/domain/user"
	"courtside/internal/handler/api"
	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/pkg/clock"
	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/queries"
	"courtside/tests/common/builder"
	"courtside/tests/common/httptest"
	"courtside/tests/common/testutil"
	commandsmock "courtside/tests/mock/commands"
	queriesmock "courtside/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
	now          time.Time
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, clock.NewFixedClock(s.now))
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleRenter)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/deposit", authMiddleware, s.handler.Deposit)
	s.router.POST("/bookings/:id/pay", authMiddleware, s.handler.Pay)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	returnView := bb.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("pending_payment", response.Status)
		s.Equal("200.00", response.TotalPrice)
		s.Len(response.Lines, 1)
		s.Equal("10:00", response.Lines[0].Start)
		s.Equal("12:00", response.Lines[0].End)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil)},
			{name: "missing field: lines (required)", mutate: testutil.Field("lines", nil)},
			{name: "empty lines", mutate: testutil.Field("lines", []map[string]any{})},
			{name: "malformed date", mutate: testutil.Field("date", "07/09/2026")},
			{name: "line start above 1440", mutate: testutil.Field("lines", []map[string]any{
				{"court_id": uuid.New().String(), "start_min": 1500, "end_min": 1600},
			})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "court not found",
				commandsError:  commands.ErrCourtNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Court not found",
			},
			{
				name:           "no lines",
				commandsError:  commands.ErrNoLines,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "at least one line",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.Date.Format("2006-01-02"), response.Date)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden when not visible to actor", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	items := []*queries.BookingListItem{
		{ID: uuid.New(), Status: "pending_payment", TotalPriceCents: 200_00, LineCount: 1},
		{ID: uuid.New(), Status: "completed", TotalPriceCents: 100_00, TotalPaidCents: 100_00, LineCount: 2},
	}

	s.Run("success: returns own bookings", func() {
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.actorID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
		s.Equal(2, response[1].LineCount)
	})

	s.Run("success: empty list stays an array", func() {
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.actorID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal")
	})
}

// ================================================================================
// TestDeposit / TestPay
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeposit() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/deposit"

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID
	returnView.Status = "deposited"
	returnView.TotalPaidCents = 100_00
	returnView.RemainingBalanceCents = 100_00
	returnView.InitialDepositCents = 100_00

	reqBody := map[string]any{"amount_cents": 100_00}

	s.Run("success: returns 200 OK with updated booking", func() {
		s.mockCommands.EXPECT().Deposit(gomock.Any(), gomock.Any(), bookingID, int64(100_00)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("deposited", response.Status)
		s.Equal("100.00", response.TotalPaid)
		s.Equal("100.00", response.RemainingBalance)
	})

	s.Run("error: 400 Bad Request when amount is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "booking not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "forbidden", commandsError: commands.ErrForbidden, expectedStatus: http.StatusForbidden},
			{name: "concurrent update", commandsError: commands.ErrConcurrentUpdate, expectedStatus: http.StatusConflict},
			{name: "deposit below minimum", commandsError: commands.ErrDomainValidation, expectedStatus: http.StatusUnprocessableEntity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Deposit(gomock.Any(), gomock.Any(), bookingID, int64(100_00)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestPay() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/pay"

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID
	returnView.Status = "completed"
	returnView.TotalPaidCents = 200_00
	returnView.RemainingBalanceCents = 0

	s.Run("success: full payment completes the booking", func() {
		s.mockCommands.EXPECT().Pay(gomock.Any(), gomock.Any(), bookingID, int64(200_00)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount_cents": 200_00}, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
		s.Equal("0.00", response.RemainingBalance)
	})

	s.Run("error: 409 Conflict on concurrent modification", func() {
		s.mockCommands.EXPECT().Pay(gomock.Any(), gomock.Any(), bookingID, int64(200_00)).
			Return(nil, commands.ErrConcurrentUpdate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount_cents": 200_00}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "concurrently")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	reqBody := map[string]any{"reason": "rained out"}
	result := &commands.CancelResult{RefundCents: 100_00, NewStatus: "cancelled"}

	s.Run("success: returns refund and new status", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), bookingID, "rained out", s.now).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
		s.Equal(int64(100_00), response.RefundCents)
		s.Equal("100.00", response.Refund)
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 Unprocessable Entity when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), bookingID, "rained out", s.now).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 403 Forbidden for unrelated actor", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), bookingID, "rained out", s.now).
			Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirm() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/confirm"

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID
	returnView.Status = "deposited"

	s.Run("success: returns 200 OK with deposited booking", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("deposited", response.Status)
	})

	s.Run("error: 403 Forbidden when actor does not own the court", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID
	returnView.Status = "payment_fail"

	reqBody := map[string]any{"status": "payment_fail"}

	s.Run("success: returns 200 OK with new status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bookingID, "payment_fail").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("payment_fail", response.Status)
	})

	s.Run("error: 422 Unprocessable Entity on illegal transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bookingID, "payment_fail").
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 403 Forbidden for non-admin actor", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bookingID, "payment_fail").
			Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
