package repositories

import (
	"context"

	"gorm.io/gorm"
	"gymguru/internal/models/db_models"
	"gymguru/internal/models/response_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	// FindByCredentials returns at most two matches so callers can tell a
	// unique hit from a duplicated account.
	FindByCredentials(ctx context.Context, username, password string) ([]db_models.Account, error)
	UpdateCredentials(ctx context.Context, accountID uint, username, password string) error
	FindMemberAccount(ctx context.Context, accountID uint) (*response_models.MemberAccount, error)
	FindTrainerAccount(ctx context.Context, accountID uint) (*response_models.TrainerAccount, error)
	FindAdminAccount(ctx context.Context, accountID uint) (*response_models.AdminAccount, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByCredentials(ctx context.Context, username, password string) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		Limit(2).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) UpdateCredentials(ctx context.Context, accountID uint, username, password string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{
			"username": username,
			"password": password,
		}).Error
}

func (a *accountRepository) FindMemberAccount(ctx context.Context, accountID uint) (*response_models.MemberAccount, error) {
	var out response_models.MemberAccount
	found, err := a.findJoined(ctx, "member", "member_id", accountID, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

func (a *accountRepository) FindTrainerAccount(ctx context.Context, accountID uint) (*response_models.TrainerAccount, error) {
	var out response_models.TrainerAccount
	found, err := a.findJoined(ctx, "trainer", "trainer_id", accountID, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

func (a *accountRepository) FindAdminAccount(ctx context.Context, accountID uint) (*response_models.AdminAccount, error) {
	var out response_models.AdminAccount
	found, err := a.findJoined(ctx, "admin", "admin_id", accountID, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

// findJoined scans account joined with its role table into dest. table and
// key are fixed identifiers chosen by the callers above.
func (a *accountRepository) findJoined(ctx context.Context, table, key string, accountID uint, dest interface{}) (bool, error) {
	res := a.db.WithContext(ctx).
		Table("account").
		Select("account.*, " + table + ".*").
		Joins("JOIN " + table + " ON account.account_id = " + table + "." + key).
		Where("account.account_id = ?", accountID).
		Limit(1).
		Scan(dest)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
