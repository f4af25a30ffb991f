package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gymguru/internal/models/db_models"
	"gymguru/internal/models/request_models"
	"gymguru/internal/models/response_models"
	"gymguru/internal/repositories"
	"gymguru/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.UserProfile, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Login matches username and password exactly and returns the account joined
// with its role row.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.UserProfile, error) {
	accounts, err := a.accountRepo.FindByCredentials(ctx, request.Username, request.Password)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	switch len(accounts) {
	case 0:
		return nil, utils.ErrInvalidCredentials
	case 1:
	default:
		return nil, utils.ErrDuplicateAccount
	}

	account := accounts[0]
	a.logger.Info("account found", zap.String("username", account.Username), zap.String("type", string(account.Type)))

	var profile response_models.UserProfile
	switch account.Type {
	case db_models.AccountTypeMember:
		var p *response_models.MemberAccount
		if p, err = a.accountRepo.FindMemberAccount(ctx, account.AccountID); p != nil {
			profile = *p
		}
	case db_models.AccountTypeTrainer:
		var p *response_models.TrainerAccount
		if p, err = a.accountRepo.FindTrainerAccount(ctx, account.AccountID); p != nil {
			profile = *p
		}
	case db_models.AccountTypeAdmin:
		var p *response_models.AdminAccount
		if p, err = a.accountRepo.FindAdminAccount(ctx, account.AccountID); p != nil {
			profile = *p
		}
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnknownAccountType, string(account.Type))
	}

	if err != nil {
		return nil, fmt.Errorf("find %s profile: %w", account.Type, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s %d", utils.ErrProfileNotFound, account.Type, account.AccountID)
	}
	return profile, nil
}
