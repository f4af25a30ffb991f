package db_models

type AccountType string

const (
	AccountTypeMember  AccountType = "member"
	AccountTypeTrainer AccountType = "trainer"
	AccountTypeAdmin   AccountType = "admin"
)

// Account holds the credentials shared by every role. The role row (member,
// trainer or admin) reuses AccountID as its own primary key.
type Account struct {
	AccountID uint        `gorm:"column:account_id;primaryKey" json:"account_id"`
	Username  string      `gorm:"column:username" json:"username"`
	Password  string      `gorm:"column:password" json:"password"`
	Type      AccountType `gorm:"column:type" json:"type"`
}

func (Account) TableName() string { return "account" }
