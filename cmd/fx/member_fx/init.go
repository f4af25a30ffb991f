package member_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gymguru/internal/services"
	"gymguru/pkg/utils"
)

var Module = fx.Provide(
	provideClock, provideMemberService)

func provideClock() utils.Clock {
	return utils.SystemClock
}

// The member service takes the handle itself because registration and update
// open their own transactions.
func provideMemberService(db *gorm.DB, clock utils.Clock, logger *zap.Logger) services.MemberServiceInterface {
	return services.NewMemberService(db, clock, logger.Named("member"))
}
