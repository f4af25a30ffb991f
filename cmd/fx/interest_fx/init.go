package interest_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gymguru/internal/repositories"
	"gymguru/internal/services"
)

var Module = fx.Provide(
	provideInterestRepo, provideInterestService)

func provideInterestRepo(db *gorm.DB) repositories.InterestRepository {
	return repositories.NewInterestRepository(db)
}

func provideInterestService(interestRepo repositories.InterestRepository) services.InterestServiceInterface {
	return services.NewInterestService(interestRepo)
}
