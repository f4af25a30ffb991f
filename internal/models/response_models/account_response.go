package response_models

import "gymguru/internal/models/db_models"

// UserProfile is the joined account + role row returned by login. The set of
// implementations is closed: MemberAccount, TrainerAccount and AdminAccount.
type UserProfile interface {
	Kind() db_models.AccountType
	isUserProfile()
}

type MemberAccount struct {
	db_models.Account
	db_models.Member
}

type TrainerAccount struct {
	db_models.Account
	db_models.Trainer
}

type AdminAccount struct {
	db_models.Account
	db_models.Admin
}

func (MemberAccount) Kind() db_models.AccountType  { return db_models.AccountTypeMember }
func (TrainerAccount) Kind() db_models.AccountType { return db_models.AccountTypeTrainer }
func (AdminAccount) Kind() db_models.AccountType   { return db_models.AccountTypeAdmin }

func (MemberAccount) isUserProfile()  {}
func (TrainerAccount) isUserProfile() {}
func (AdminAccount) isUserProfile()   {}
