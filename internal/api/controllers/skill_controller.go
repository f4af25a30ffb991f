package controllers

import (
	"github.com/gin-gonic/gin"
	"gymguru/internal/services"
	"gymguru/pkg/utils"
)

type SkillController struct {
	skillService services.SkillServiceInterface
}

func NewSkillController(skillService services.SkillServiceInterface) *SkillController {
	return &SkillController{
		skillService: skillService,
	}
}

func (sc *SkillController) ListSkillsHandler(c *gin.Context) {
	skills, err := sc.skillService.GetSkills(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, skills)
}
