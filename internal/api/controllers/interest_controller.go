package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gymguru/internal/models/request_models"
	"gymguru/internal/services"
	"gymguru/pkg/utils"
)

type InterestController struct {
	interestService services.InterestServiceInterface
}

func NewInterestController(interestService services.InterestServiceInterface) *InterestController {
	return &InterestController{
		interestService: interestService,
	}
}

func bindInterest(c *gin.Context) (request_models.InterestRequest, bool) {
	var req request_models.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err))
		return req, false
	}
	return req, true
}

// AddInterest godoc
// @Summary Record a member's interest in a skill
// @Tags Interests
// @Accept json
// @Param request body request_models.InterestRequest true "member_id and skill_id"
// @Success 200
// @Failure 500 {object} utils.ErrorResponse
// @Router /add_interest [post]
func (i *InterestController) AddInterest(c *gin.Context) {
	req, ok := bindInterest(c)
	if !ok {
		return
	}

	if err := i.interestService.AddInterest(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil)
}

// DeleteInterest godoc
// @Summary Remove a member's interest in a skill
// @Tags Interests
// @Accept json
// @Param request body request_models.InterestRequest true "member_id and skill_id"
// @Success 200
// @Failure 500 {object} utils.ErrorResponse
// @Router /delete_interest [post]
func (i *InterestController) DeleteInterest(c *gin.Context) {
	req, ok := bindInterest(c)
	if !ok {
		return
	}

	if err := i.interestService.DeleteInterest(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil)
}
