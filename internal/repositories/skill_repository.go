package repositories

import (
	"context"

	"gorm.io/gorm"
	"gymguru/internal/models/db_models"
)

type SkillRepositoryInterface interface {
	GetAllSkills(ctx context.Context) ([]db_models.Skill, error)
}

func NewSkillRepository(db *gorm.DB) SkillRepositoryInterface {
	return &SkillRepository{db: db}
}

type SkillRepository struct {
	db *gorm.DB
}

func (s SkillRepository) GetAllSkills(ctx context.Context) ([]db_models.Skill, error) {
	var skills []db_models.Skill
	err := s.db.WithContext(ctx).Order("skill_id").Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}
