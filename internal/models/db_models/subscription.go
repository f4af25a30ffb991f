package db_models

import (
	"fmt"
	"time"

	"gymguru/pkg/utils"
)

type SubscriptionType string

const (
	SubscriptionMonthly SubscriptionType = "Monthly"
	SubscriptionAnnual  SubscriptionType = "Annual"
)

// NextPayDate returns the first billing date after from for this plan type.
func (s SubscriptionType) NextPayDate(from time.Time) (Date, error) {
	switch s {
	case SubscriptionMonthly:
		return NewDate(utils.AddMonthsClamped(from, 1)), nil
	case SubscriptionAnnual:
		return NewDate(utils.AddYearsClamped(from, 1)), nil
	default:
		return Date{}, fmt.Errorf("%w: %q", utils.ErrUnknownSubscriptionType, string(s))
	}
}

type Subscription struct {
	SubscriptionID uint             `gorm:"column:subscription_id;primaryKey" json:"subscription_id"`
	Type           SubscriptionType `gorm:"column:type" json:"type"`
	Price          float64          `gorm:"column:price" json:"price"`
}

func (Subscription) TableName() string { return "subscription" }
