package request

import (
	"strings"
	"time"

	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingLineRequest struct {
	CourtID  uuid.UUID `json:"court_id" binding:"required"`
	StartMin int       `json:"start_min" binding:"min=0,max=1440"`
	EndMin   int       `json:"end_min" binding:"min=0,max=1440"`
}

type CreateBookingRequest struct {
	Date  string               `json:"date" binding:"required"`
	Note  string               `json:"note"`
	Lines []BookingLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	lines := make([]commands.LineParams, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, commands.LineParams{
			CourtID:  l.CourtID,
			StartMin: l.StartMin,
			EndMin:   l.EndMin,
		})
	}

	return commands.CreateBookingParams{
		Date:  date,
		Note:  strings.TrimSpace(r.Note),
		Lines: lines,
	}, nil
}

type PaymentRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
