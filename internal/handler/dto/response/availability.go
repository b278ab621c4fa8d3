package response

import (
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotPromotionResponse struct {
	ID                   uuid.UUID `json:"id"`
	Description          string    `json:"description"`
	Kind                 string    `json:"kind"`
	Value                float64   `json:"value"`
	DiscountedPriceCents int64     `json:"discountedPriceCents"`
	DiscountedPrice      string    `json:"discountedPrice"`
}

type SlotResponse struct {
	Start      string                 `json:"start"`
	End        string                 `json:"end"`
	Status     string                 `json:"status"`
	PriceCents int64                  `json:"priceCents"`
	Price      string                 `json:"price"`
	Promotion  *SlotPromotionResponse `json:"promotion,omitempty"`
	OccupantID *uuid.UUID             `json:"occupantId,omitempty"`
}

type DayScheduleResponse struct {
	Date    string         `json:"date"`
	Weekday int            `json:"weekday"`
	Slots   []SlotResponse `json:"slots"`
}

type AvailabilityGridResponse struct {
	CourtID uuid.UUID             `json:"courtId"`
	From    string                `json:"from"`
	To      string                `json:"to"`
	Days    []DayScheduleResponse `json:"days"`
}

func FromAvailabilityGrid(grid *queries.AvailabilityGridView) *AvailabilityGridResponse {
	days := make([]DayScheduleResponse, 0, len(grid.Days))
	for _, day := range grid.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, s := range day.Slots {
			slot := SlotResponse{
				Start:      minutesToClock(s.StartMin),
				End:        minutesToClock(s.EndMin),
				Status:     s.Status,
				PriceCents: s.PriceCents,
				Price:      centsToDecimal(s.PriceCents),
				OccupantID: s.OccupantID,
			}
			if s.Promotion != nil {
				slot.Promotion = &SlotPromotionResponse{
					ID:                   s.Promotion.ID,
					Description:          s.Promotion.Description,
					Kind:                 s.Promotion.Kind,
					Value:                s.Promotion.Value,
					DiscountedPriceCents: s.Promotion.DiscountedPriceCents,
					DiscountedPrice:      centsToDecimal(s.Promotion.DiscountedPriceCents),
				}
			}
			slots = append(slots, slot)
		}
		days = append(days, DayScheduleResponse{
			Date:    day.Date.Format("2006-01-02"),
			Weekday: day.Weekday,
			Slots:   slots,
		})
	}

	return &AvailabilityGridResponse{
		CourtID: grid.CourtID,
		From:    grid.From.Format("2006-01-02"),
		To:      grid.To.Format("2006-01-02"),
		Days:    days,
	}
}
