package components

import (
	"courtside/internal/infra/readstore"
	"courtside/internal/infra/repository"

	"go.uber.org/fx"
)

// Write repositories and read stores. Constructors already return the
// port interfaces the usecase layer declares, so no fx.As annotations
// are needed here.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewBookingRepository,
		repository.NewCourtRepository,
		repository.NewTemplateRepository,
		repository.NewPromotionRepository,
		repository.NewNotificationRepository,
		repository.NewUserRepository,

		readstore.NewAvailabilityReadStore,
		readstore.NewBookingReadStore,
		readstore.NewCatalogReadStore,
	),
)
