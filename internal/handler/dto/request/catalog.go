package request

import (
	"time"

	"courtside/internal/usecase/commands"
)

type CreateCourtRequest struct {
	Name                    string  `json:"name" binding:"required"`
	SlotDurationMin         int     `json:"slot_duration_min" binding:"required,min=1"`
	CancellationWindowHours int     `json:"cancellation_window_hours" binding:"min=0"`
	RefundPercent           float64 `json:"refund_percent" binding:"min=0,max=100"`
	MinDepositPercent       float64 `json:"min_deposit_percent" binding:"min=0,max=100"`
}

func (r CreateCourtRequest) ToParams() commands.CreateCourtParams {
	return commands.CreateCourtParams{
		Name:                    r.Name,
		SlotDurationMin:         r.SlotDurationMin,
		CancellationWindowHours: r.CancellationWindowHours,
		RefundPercent:           r.RefundPercent,
		MinDepositPercent:       r.MinDepositPercent,
	}
}

type CreateTemplateRequest struct {
	Weekdays          []int  `json:"weekdays" binding:"required,min=1,dive,min=1,max=7"`
	StartMin          int    `json:"start_min" binding:"min=0,max=1440"`
	EndMin            int    `json:"end_min" binding:"min=0,max=1440"`
	PricePerSlotCents int64  `json:"price_per_slot_cents" binding:"min=0"`
	Status            string `json:"status" binding:"required,oneof=available maintenance"`
}

func (r CreateTemplateRequest) ToParams() commands.CreateTemplateParams {
	return commands.CreateTemplateParams{
		Weekdays:          r.Weekdays,
		StartMin:          r.StartMin,
		EndMin:            r.EndMin,
		PricePerSlotCents: r.PricePerSlotCents,
		Status:            r.Status,
	}
}

type CreatePromotionRequest struct {
	Description string  `json:"description" binding:"required"`
	Kind        string  `json:"kind" binding:"required,oneof=percentage fixed_amount"`
	Value       float64 `json:"value" binding:"required,gt=0"`
	ValidFrom   string  `json:"valid_from" binding:"required"`
	ValidTo     string  `json:"valid_to" binding:"required"`
}

func (r CreatePromotionRequest) ToParams() (commands.CreatePromotionParams, error) {
	from, err := time.Parse(dateLayout, r.ValidFrom)
	if err != nil {
		return commands.CreatePromotionParams{}, err
	}
	to, err := time.Parse(dateLayout, r.ValidTo)
	if err != nil {
		return commands.CreatePromotionParams{}, err
	}
	return commands.CreatePromotionParams{
		Description: r.Description,
		Kind:        r.Kind,
		Value:       r.Value,
		ValidFrom:   from,
		ValidTo:     to,
	}, nil
}
