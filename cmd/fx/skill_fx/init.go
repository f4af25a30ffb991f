package skill_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gymguru/internal/repositories"
	"gymguru/internal/services"
)

var Module = fx.Provide(
	provideSkillRepo, provideSkillService)

func provideSkillRepo(db *gorm.DB) repositories.SkillRepositoryInterface {
	return repositories.NewSkillRepository(db)
}

func provideSkillService(skillRepo repositories.SkillRepositoryInterface) services.SkillServiceInterface {
	return services.NewSkillService(skillRepo)
}
