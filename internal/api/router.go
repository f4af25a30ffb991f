package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gymguru/internal/api/controllers"
	"gymguru/pkg/middleware"
)

type Controllers struct {
	Account      *controllers.AccountController
	Member       *controllers.MemberController
	Subscription *controllers.SubscriptionController
	Skill        *controllers.SkillController
	Interest     *controllers.InterestController
	Health       *controllers.HealthController
}

func NewRouter(logger *zap.Logger, allowedOrigins []string, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	RegisterRoutes(r, ctrl)

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/subscription_models", ctrl.Subscription.GetSubscriptionModels)
	r.GET("/skills", ctrl.Skill.ListSkillsHandler)

	r.POST("/register_member", ctrl.Member.RegisterMember)
	r.POST("/update_member_info", ctrl.Member.UpdateMemberInfo)
	r.POST("/login", ctrl.Account.Login)

	r.POST("/add_interest", ctrl.Interest.AddInterest)
	r.POST("/delete_interest", ctrl.Interest.DeleteInterest)

	r.GET("/healthz", ctrl.Health.Health)
}
