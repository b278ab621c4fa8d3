package commands

import (
	"context"
	"time"

	"courtside/internal/domain/court"
	"courtside/internal/domain/money"
	"courtside/internal/domain/promotion"
	"courtside/internal/domain/schedule"
	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

// Catalog commands cover the owner-side publishing surface: courts,
// weekly templates and promotions.

type CreateCourtParams struct {
	Name                    string
	SlotDurationMin         int
	CancellationWindowHours int
	RefundPercent           float64
	MinDepositPercent       float64
}

type CreateTemplateParams struct {
	Weekdays          []int
	StartMin          int
	EndMin            int
	PricePerSlotCents int64
	Status            string
}

type CreatePromotionParams struct {
	Description string
	Kind        string
	Value       float64
	ValidFrom   time.Time
	ValidTo     time.Time
}

type CatalogCommands interface {
	CreateCourt(ctx context.Context, actor queries.Actor, params CreateCourtParams) (uuid.UUID, error)
	CreateTemplate(ctx context.Context, actor queries.Actor, courtID uuid.UUID, params CreateTemplateParams) (uuid.UUID, error)
	CreatePromotion(ctx context.Context, actor queries.Actor, courtID uuid.UUID, params CreatePromotionParams) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	courtRepo     CourtRepository
	templateRepo  TemplateRepository
	promotionRepo PromotionRepository
}

func NewCatalogCommands(
	courtRepo CourtRepository,
	templateRepo TemplateRepository,
	promotionRepo PromotionRepository,
) CatalogCommands {
	return &catalogCommandsImpl{
		courtRepo:     courtRepo,
		templateRepo:  templateRepo,
		promotionRepo: promotionRepo,
	}
}

func (c *catalogCommandsImpl) CreateCourt(ctx context.Context, actor queries.Actor, params CreateCourtParams) (uuid.UUID, error) {
	if actor.Role != user.RoleOwner && actor.Role != user.RoleAdmin {
		return uuid.Nil, ErrForbidden
	}

	courtEntity, err := court.NewCourt(
		uuid.Nil,
		actor.ID,
		params.Name,
		params.SlotDurationMin,
		params.CancellationWindowHours,
		params.RefundPercent,
		params.MinDepositPercent,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.courtRepo.Create(ctx, courtEntity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return courtEntity.ID(), nil
}

func (c *catalogCommandsImpl) CreateTemplate(ctx context.Context, actor queries.Actor, courtID uuid.UUID, params CreateTemplateParams) (uuid.UUID, error) {
	if err := c.requireCourtOwner(ctx, actor, courtID); err != nil {
		return uuid.Nil, err
	}

	weekdays, err := schedule.NewWeekdaySet(params.Weekdays...)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	start, err := schedule.NewTimeOfDay(params.StartMin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	end, err := schedule.NewTimeOfDay(params.EndMin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	price, err := money.New(params.PricePerSlotCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	status, err := schedule.NewTemplateStatus(params.Status)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	template, err := schedule.NewWeeklyTemplate(uuid.Nil, courtID, weekdays, start, end, price, status)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.templateRepo.Create(ctx, template); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return template.ID(), nil
}

func (c *catalogCommandsImpl) CreatePromotion(ctx context.Context, actor queries.Actor, courtID uuid.UUID, params CreatePromotionParams) (uuid.UUID, error) {
	if err := c.requireCourtOwner(ctx, actor, courtID); err != nil {
		return uuid.Nil, err
	}

	kind, err := promotion.NewKind(params.Kind)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	promo, err := promotion.NewPromotion(uuid.Nil, courtID, params.Description, kind, params.Value, params.ValidFrom, params.ValidTo)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.promotionRepo.Create(ctx, promo); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return promo.ID(), nil
}

func (c *catalogCommandsImpl) requireCourtOwner(ctx context.Context, actor queries.Actor, courtID uuid.UUID) error {
	courtEntity, err := c.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourtNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if actor.Role != user.RoleAdmin && !courtEntity.IsOwnedBy(actor.ID) {
		return ErrForbidden
	}
	return nil
}
