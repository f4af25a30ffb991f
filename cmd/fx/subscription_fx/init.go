package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gymguru/internal/repositories"
	"gymguru/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(subscriptionRepo repositories.ISubscriptionRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo)
}
