// Package testutil opens throwaway databases carrying the Gym Guru schema.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gymguru/internal/models/db_models"
)

// NewDB returns an in-memory SQLite database with every table created. The
// pool is pinned to one connection so all statements share the same memory
// database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&db_models.Account{},
		&db_models.Member{},
		&db_models.Trainer{},
		&db_models.Admin{},
		&db_models.Subscription{},
		&db_models.Skill{},
		&db_models.Interest{},
	))
	return db
}

// Seed holds the reference rows created by SeedReference.
type Seed struct {
	Monthly db_models.Subscription
	Annual  db_models.Subscription
	Skills  []db_models.Skill
}

// SeedReference inserts the two subscription plans and a few skills.
func SeedReference(t testing.TB, db *gorm.DB) Seed {
	t.Helper()

	s := Seed{
		Monthly: db_models.Subscription{Type: db_models.SubscriptionMonthly, Price: 49.99},
		Annual:  db_models.Subscription{Type: db_models.SubscriptionAnnual, Price: 499.99},
		Skills: []db_models.Skill{
			{Name: "Yoga"},
			{Name: "Boxing"},
			{Name: "Weightlifting"},
		},
	}
	require.NoError(t, db.Create(&s.Monthly).Error)
	require.NoError(t, db.Create(&s.Annual).Error)
	require.NoError(t, db.Create(&s.Skills).Error)
	return s
}

// CreateAccount inserts an account of the given type and returns its id.
func CreateAccount(t testing.TB, db *gorm.DB, username, password string, typ db_models.AccountType) uint {
	t.Helper()

	account := db_models.Account{Username: username, Password: password, Type: typ}
	require.NoError(t, db.Create(&account).Error)
	return account.AccountID
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// FindMember loads the member row with the given id, or nil when absent.
func FindMember(t testing.TB, db *gorm.DB, memberID uint) *db_models.Member {
	t.Helper()

	var members []db_models.Member
	require.NoError(t, db.Where("member_id = ?", memberID).Limit(1).Find(&members).Error)
	if len(members) == 0 {
		return nil
	}
	return &members[0]
}

// InterestsOf lists the interests of a member ordered by skill.
func InterestsOf(t testing.TB, db *gorm.DB, memberID uint) []db_models.Interest {
	t.Helper()

	var interests []db_models.Interest
	require.NoError(t, db.Where("member_id = ?", memberID).Order("skill_id").Find(&interests).Error)
	return interests
}

// FailUpdates installs a trigger that aborts every UPDATE on table.
func FailUpdates(t testing.TB, db *gorm.DB, table string) {
	t.Helper()

	require.NoError(t, db.Exec(
		"CREATE TRIGGER fail_update_" + table + " BEFORE UPDATE ON " + table +
			" BEGIN SELECT RAISE(ABORT, 'update rejected'); END").Error)
}
