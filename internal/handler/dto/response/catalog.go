package response

import (
	"time"

	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID                      uuid.UUID `json:"id"`
	OwnerID                 uuid.UUID `json:"ownerId"`
	Name                    string    `json:"name"`
	SlotDurationMin         int       `json:"slotDurationMin"`
	CancellationWindowHours int       `json:"cancellationWindowHours"`
	RefundPercent           float64   `json:"refundPercent"`
	MinDepositPercent       float64   `json:"minDepositPercent"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

type TemplateResponse struct {
	ID                uuid.UUID `json:"id"`
	CourtID           uuid.UUID `json:"courtId"`
	Weekdays          []int     `json:"weekdays"`
	Start             string    `json:"start"`
	End               string    `json:"end"`
	PricePerSlotCents int64     `json:"pricePerSlotCents"`
	PricePerSlot      string    `json:"pricePerSlot"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

type PromotionResponse struct {
	ID          uuid.UUID `json:"id"`
	CourtID     uuid.UUID `json:"courtId"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	Value       float64   `json:"value"`
	ValidFrom   string    `json:"validFrom"`
	ValidTo     string    `json:"validTo"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromCourtView(view *queries.CourtView) *CourtResponse {
	return &CourtResponse{
		ID:                      view.ID,
		OwnerID:                 view.OwnerID,
		Name:                    view.Name,
		SlotDurationMin:         view.SlotDurationMin,
		CancellationWindowHours: view.CancellationWindowHours,
		RefundPercent:           view.RefundPercent,
		MinDepositPercent:       view.MinDepositPercent,
		CreatedAt:               view.CreatedAt,
		UpdatedAt:               view.UpdatedAt,
	}
}

func FromTemplateView(view *queries.TemplateView) *TemplateResponse {
	return &TemplateResponse{
		ID:                view.ID,
		CourtID:           view.CourtID,
		Weekdays:          view.Weekdays,
		Start:             minutesToClock(view.StartMin),
		End:               minutesToClock(view.EndMin),
		PricePerSlotCents: view.PricePerSlotCents,
		PricePerSlot:      centsToDecimal(view.PricePerSlotCents),
		Status:            view.Status,
		CreatedAt:         view.CreatedAt,
	}
}

func FromPromotionView(view *queries.PromotionView) *PromotionResponse {
	return &PromotionResponse{
		ID:          view.ID,
		CourtID:     view.CourtID,
		Description: view.Description,
		Kind:        view.Kind,
		Value:       view.Value,
		ValidFrom:   view.ValidFrom.Format("2006-01-02"),
		ValidTo:     view.ValidTo.Format("2006-01-02"),
		CreatedAt:   view.CreatedAt,
	}
}
