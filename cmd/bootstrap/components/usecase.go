package components

import (
	"courtside/internal/domain/booking"
	"courtside/internal/pkg/clock"
	"courtside/internal/usecase"
	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewPolicyRefundCalculator,
		fx.As(new(booking.RefundCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
