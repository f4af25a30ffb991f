package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gymguru/internal/models/request_models"
	"gymguru/internal/services"
	"gymguru/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Find the user behind a username/password pair
// @Description Returns the account joined with its member, trainer or admin row
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.MemberAccount
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err))
		return
	}

	profile, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile)
}
