package response

import (
	"fmt"
	"time"

	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingLineResponse struct {
	ID         uuid.UUID `json:"id"`
	CourtID    uuid.UUID `json:"courtId"`
	CourtName  string    `json:"courtName"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	PriceCents int64     `json:"priceCents"`
	Price      string    `json:"price"`
}

type BookingResponse struct {
	ID                    uuid.UUID             `json:"id"`
	RenterID              uuid.UUID             `json:"renterId"`
	Date                  string                `json:"date"`
	Status                string                `json:"status"`
	TotalPriceCents       int64                 `json:"totalPriceCents"`
	TotalPrice            string                `json:"totalPrice"`
	TotalPaidCents        int64                 `json:"totalPaidCents"`
	TotalPaid             string                `json:"totalPaid"`
	RemainingBalanceCents int64                 `json:"remainingBalanceCents"`
	RemainingBalance      string                `json:"remainingBalance"`
	InitialDepositCents   int64                 `json:"initialDepositCents"`
	Note                  string                `json:"note,omitempty"`
	CancellationReason    *string               `json:"cancellationReason,omitempty"`
	CancellationTime      *time.Time            `json:"cancellationTime,omitempty"`
	Lines                 []BookingLineResponse `json:"lines"`
	Version               int64                 `json:"version"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	TotalPaidCents  int64     `json:"totalPaidCents"`
	LineCount       int       `json:"lineCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CancelBookingResponse struct {
	Status      string `json:"status"`
	RefundCents int64  `json:"refundCents"`
	Refund      string `json:"refund"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	lines := make([]BookingLineResponse, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, BookingLineResponse{
			ID:         l.ID,
			CourtID:    l.CourtID,
			CourtName:  l.CourtName,
			Start:      minutesToClock(l.StartMin),
			End:        minutesToClock(l.EndMin),
			PriceCents: l.PriceCents,
			Price:      centsToDecimal(l.PriceCents),
		})
	}

	return &BookingResponse{
		ID:                    view.ID,
		RenterID:              view.RenterID,
		Date:                  view.Date.Format("2006-01-02"),
		Status:                view.Status,
		TotalPriceCents:       view.TotalPriceCents,
		TotalPrice:            centsToDecimal(view.TotalPriceCents),
		TotalPaidCents:        view.TotalPaidCents,
		TotalPaid:             centsToDecimal(view.TotalPaidCents),
		RemainingBalanceCents: view.RemainingBalanceCents,
		RemainingBalance:      centsToDecimal(view.RemainingBalanceCents),
		InitialDepositCents:   view.InitialDepositCents,
		Note:                  view.Note,
		CancellationReason:    view.CancellationReason,
		CancellationTime:      view.CancellationTime,
		Lines:                 lines,
		Version:               view.Version,
		CreatedAt:             view.CreatedAt,
		UpdatedAt:             view.UpdatedAt,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              item.ID,
		Date:            item.Date.Format("2006-01-02"),
		Status:          item.Status,
		TotalPriceCents: item.TotalPriceCents,
		TotalPaidCents:  item.TotalPaidCents,
		LineCount:       item.LineCount,
		CreatedAt:       item.CreatedAt,
	}
}

func FromCancelResult(result *commands.CancelResult) CancelBookingResponse {
	return CancelBookingResponse{
		Status:      result.NewStatus,
		RefundCents: result.RefundCents,
		Refund:      centsToDecimal(result.RefundCents),
	}
}

func centsToDecimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
