package controllers_fx

import (
	"go.uber.org/fx"
	"gymguru/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewSkillController),
	fx.Provide(controllers.NewInterestController),
	fx.Provide(controllers.NewHealthController))
