package services

import (
	"context"
	"fmt"

	"gymguru/internal/models/db_models"
	"gymguru/internal/models/request_models"
	"gymguru/internal/repositories"
)

type InterestServiceInterface interface {
	AddInterest(ctx context.Context, request request_models.InterestRequest) error
	DeleteInterest(ctx context.Context, request request_models.InterestRequest) error
}

type InterestService struct {
	interestRepo repositories.InterestRepository
}

func NewInterestService(interestRepo repositories.InterestRepository) InterestServiceInterface {
	return &InterestService{interestRepo: interestRepo}
}

func (i *InterestService) AddInterest(ctx context.Context, request request_models.InterestRequest) error {
	interest := db_models.Interest{MemberID: request.MemberID, SkillID: request.SkillID}
	if err := i.interestRepo.Insert(ctx, interest); err != nil {
		return fmt.Errorf("insert interest: %w", err)
	}
	return nil
}

func (i *InterestService) DeleteInterest(ctx context.Context, request request_models.InterestRequest) error {
	interest := db_models.Interest{MemberID: request.MemberID, SkillID: request.SkillID}
	if err := i.interestRepo.Delete(ctx, interest); err != nil {
		return fmt.Errorf("delete interest: %w", err)
	}
	return nil
}
