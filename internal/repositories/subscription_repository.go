package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gymguru/internal/models/db_models"
)

type ISubscriptionRepository interface {
	GetAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error)
	GetSubscriptionById(ctx context.Context, subscriptionID uint) (*db_models.Subscription, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (s SubscriptionRepository) GetAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error) {
	var subscriptions []db_models.Subscription
	err := s.db.WithContext(ctx).Order("subscription_id").Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (s SubscriptionRepository) GetSubscriptionById(ctx context.Context, subscriptionID uint) (*db_models.Subscription, error) {
	var subscription db_models.Subscription
	err := s.db.WithContext(ctx).First(&subscription, "subscription_id = ?", subscriptionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}
