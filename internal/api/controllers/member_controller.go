package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gymguru/internal/models/request_models"
	"gymguru/internal/services"
	"gymguru/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// RegisterMember godoc
// @Summary Register a new member
// @Description Creates the account and member rows in one transaction. next_pay_date is computed from the subscription type.
// @Tags Members
// @Accept json
// @Param request body request_models.RegisterMemberRequest true "Member registration payload"
// @Success 200
// @Failure 500 {object} utils.ErrorResponse
// @Router /register_member [post]
func (m *MemberController) RegisterMember(c *gin.Context) {
	var req request_models.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err))
		return
	}

	if _, err := m.memberService.RegisterMember(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil)
}

// UpdateMemberInfo godoc
// @Summary Update a member's profile and credentials
// @Tags Members
// @Accept json
// @Param request body request_models.UpdateMemberRequest true "Member update payload"
// @Success 200
// @Failure 500 {object} utils.ErrorResponse
// @Router /update_member_info [post]
func (m *MemberController) UpdateMemberInfo(c *gin.Context) {
	var req request_models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err))
		return
	}

	if err := m.memberService.UpdateMemberInfo(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil)
}
