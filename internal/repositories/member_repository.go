package repositories

import (
	"context"

	"gorm.io/gorm"
	"gymguru/internal/models/db_models"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.Member) error
	// Update rewrites every client-editable column. next_pay_date is left alone.
	Update(ctx context.Context, member *db_models.Member) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (m *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return m.db.WithContext(ctx).Create(member).Error
}

func (m *memberRepository) Update(ctx context.Context, member *db_models.Member) error {
	return m.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("member_id = ?", member.MemberID).
		Updates(map[string]interface{}{
			"first_name":      member.FirstName,
			"last_name":       member.LastName,
			"email":           member.Email,
			"date_of_birth":   member.DateOfBirth,
			"height":          member.Height,
			"weight":          member.Weight,
			"subscription_id": member.SubscriptionID,
			"card_number":     member.CardNumber,
		}).Error
}

