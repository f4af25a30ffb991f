package controllers

import (
	"github.com/gin-gonic/gin"
	"gymguru/internal/services"
	"gymguru/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// GetSubscriptionModels godoc
// @Summary List subscription plans
// @Tags Subscriptions
// @Produce json
// @Success 200 {array} db_models.Subscription
// @Failure 500 {object} utils.ErrorResponse
// @Router /subscription_models [get]
func (s *SubscriptionController) GetSubscriptionModels(c *gin.Context) {
	subscriptions, err := s.subscriptionService.GetSubscriptionModels(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subscriptions)
}
