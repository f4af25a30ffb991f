package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gymguru/internal/models/db_models"
	"gymguru/internal/models/request_models"
	"gymguru/internal/repositories"
	"gymguru/pkg/utils"
)

type MemberServiceInterface interface {
	RegisterMember(ctx context.Context, request request_models.RegisterMemberRequest) (*db_models.Member, error)
	UpdateMemberInfo(ctx context.Context, request request_models.UpdateMemberRequest) error
}

// MemberService owns the two-table writes. Each call runs in one transaction
// and the repositories are bound to that transaction.
type MemberService struct {
	db     *gorm.DB
	clock  utils.Clock
	logger *zap.Logger
}

func NewMemberService(db *gorm.DB, clock utils.Clock, logger *zap.Logger) MemberServiceInterface {
	return &MemberService{
		db:     db,
		clock:  clock,
		logger: logger,
	}
}

func (m *MemberService) RegisterMember(ctx context.Context, request request_models.RegisterMemberRequest) (*db_models.Member, error) {
	var member *db_models.Member

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account := &db_models.Account{
			Username: request.Username,
			Password: request.Password,
			Type:     db_models.AccountTypeMember,
		}
		if err := repositories.NewAccountRepository(tx).Insert(ctx, account); err != nil {
			return fmt.Errorf("insert account: %w", err)
		}
		m.logger.Debug("new account", zap.Uint("account_id", account.AccountID))

		subscription, err := repositories.NewSubscriptionRepository(tx).GetSubscriptionById(ctx, request.SubscriptionID)
		if err != nil {
			return fmt.Errorf("find subscription: %w", err)
		}
		if subscription == nil {
			return fmt.Errorf("%w: %d", utils.ErrSubscriptionNotFound, request.SubscriptionID)
		}

		nextPayDate, err := subscription.Type.NextPayDate(m.clock())
		if err != nil {
			return err
		}

		member = &db_models.Member{
			MemberID:       account.AccountID,
			FirstName:      request.FirstName,
			LastName:       request.LastName,
			Email:          request.Email,
			DateOfBirth:    request.DateOfBirth,
			Height:         request.Height,
			Weight:         request.Weight,
			NextPayDate:    nextPayDate,
			SubscriptionID: request.SubscriptionID,
			CardNumber:     request.CardNumber,
		}
		if err := repositories.NewMemberRepository(tx).Insert(ctx, member); err != nil {
			return fmt.Errorf("insert member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("member registered",
		zap.Uint("member_id", member.MemberID),
		zap.String("next_pay_date", member.NextPayDate.String()))
	return member, nil
}

func (m *MemberService) UpdateMemberInfo(ctx context.Context, request request_models.UpdateMemberRequest) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member := &db_models.Member{
			MemberID:       request.MemberID,
			FirstName:      request.FirstName,
			LastName:       request.LastName,
			Email:          request.Email,
			DateOfBirth:    request.DateOfBirth,
			Height:         request.Height,
			Weight:         request.Weight,
			SubscriptionID: request.SubscriptionID,
			CardNumber:     request.CardNumber,
		}
		if err := repositories.NewMemberRepository(tx).Update(ctx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}

		if err := repositories.NewAccountRepository(tx).UpdateCredentials(ctx, request.MemberID, request.Username, request.Password); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		return nil
	})
}
