package repositories

import (
	"context"

	"gorm.io/gorm"
	"gymguru/internal/models/db_models"
)

type InterestRepository interface {
	Insert(ctx context.Context, interest db_models.Interest) error
	Delete(ctx context.Context, interest db_models.Interest) error
}

type interestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &interestRepository{db: db}
}

func (i *interestRepository) Insert(ctx context.Context, interest db_models.Interest) error {
	return i.db.WithContext(ctx).Create(&interest).Error
}

// Delete removes the (member_id, skill_id) row. Deleting a missing pair is not
// an error.
func (i *interestRepository) Delete(ctx context.Context, interest db_models.Interest) error {
	return i.db.WithContext(ctx).
		Where("member_id = ? AND skill_id = ?", interest.MemberID, interest.SkillID).
		Delete(&db_models.Interest{}).Error
}

