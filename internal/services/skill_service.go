package services

import (
	"context"
	"fmt"

	"gymguru/internal/models/db_models"
	"gymguru/internal/repositories"
)

type SkillServiceInterface interface {
	GetSkills(ctx context.Context) ([]db_models.Skill, error)
}

type SkillService struct {
	skillRepo repositories.SkillRepositoryInterface
}

func NewSkillService(skillRepo repositories.SkillRepositoryInterface) SkillServiceInterface {
	return &SkillService{
		skillRepo: skillRepo,
	}
}

func (s *SkillService) GetSkills(ctx context.Context) ([]db_models.Skill, error) {
	skills, err := s.skillRepo.GetAllSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	if skills == nil {
		return []db_models.Skill{}, nil
	}
	return skills, nil
}
