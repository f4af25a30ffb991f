package services

import (
	"context"
	"fmt"

	"gymguru/internal/models/db_models"
	"gymguru/internal/repositories"
)

type SubscriptionServiceInterface interface {
	GetSubscriptionModels(ctx context.Context) ([]db_models.Subscription, error)
}

func NewSubscriptionService(subscriptionRepo repositories.ISubscriptionRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
	}
}

type SubscriptionService struct {
	subscriptionRepo repositories.ISubscriptionRepository
}

func (s *SubscriptionService) GetSubscriptionModels(ctx context.Context) ([]db_models.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.GetAllSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	if subscriptions == nil {
		return []db_models.Subscription{}, nil
	}
	return subscriptions, nil
}
