package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gymguru/internal/models/db_models"
	"gymguru/internal/models/request_models"
	"gymguru/internal/repositories"
	"gymguru/internal/testutil"
	"gymguru/pkg/utils"
)

func fixedClock(y int, m time.Month, d int) utils.Clock {
	return func() time.Time { return time.Date(y, m, d, 10, 30, 0, 0, time.UTC) }
}

func registerRequest(username string, subscriptionID uint) request_models.RegisterMemberRequest {
	dob, _ := db_models.ParseDate("1990-05-01")
	return request_models.RegisterMemberRequest{
		Username: username,
		Password: "p",
		MemberProfile: request_models.MemberProfile{
			FirstName:      "Alice",
			LastName:       "Smith",
			Email:          "alice@example.com",
			DateOfBirth:    dob,
			Height:         170,
			Weight:         60,
			SubscriptionID: subscriptionID,
			CardNumber:     "4111111111111111",
		},
	}
}

func TestRegisterMemberMonthly(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.SeedReference(t, db)
	svc := NewMemberService(db, fixedClock(2024, time.January, 15), zap.NewNop())

	member, err := svc.RegisterMember(context.Background(), registerRequest("alice", seed.Monthly.SubscriptionID))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", member.NextPayDate.String())

	stored := testutil.FindMember(t, db, member.MemberID)
	require.NotNil(t, stored)
	assert.Equal(t, "2024-02-15", stored.NextPayDate.String())
	assert.Equal(t, "1990-05-01", stored.DateOfBirth.String())

	accounts, err := repositories.NewAccountRepository(db).FindByCredentials(context.Background(), "alice", "p")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, member.MemberID, accounts[0].AccountID)
	assert.Equal(t, db_models.AccountTypeMember, accounts[0].Type)
}

func TestRegisterMemberAnnual(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.SeedReference(t, db)
	svc := NewMemberService(db, fixedClock(2024, time.January, 15), zap.NewNop())

	member, err := svc.RegisterMember(context.Background(), registerRequest("bob", seed.Annual.SubscriptionID))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", member.NextPayDate.String())
}

func TestRegisterMemberRollsBackOnUnknownSubscription(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedReference(t, db)
	svc := NewMemberService(db, fixedClock(2024, time.January, 15), zap.NewNop())

	_, err := svc.RegisterMember(context.Background(), registerRequest("alice", 999))
	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)

	assert.Zero(t, testutil.CountRows(t, db, &db_models.Account{}))
	assert.Zero(t, testutil.CountRows(t, db, &db_models.Member{}))
}

func TestRegisterMemberRollsBackOnUnknownSubscriptionType(t *testing.T) {
	db := testutil.NewDB(t)
	weekly := db_models.Subscription{Type: "Weekly", Price: 9}
	require.NoError(t, db.Create(&weekly).Error)
	svc := NewMemberService(db, fixedClock(2024, time.January, 15), zap.NewNop())

	_, err := svc.RegisterMember(context.Background(), registerRequest("alice", weekly.SubscriptionID))
	assert.ErrorIs(t, err, utils.ErrUnknownSubscriptionType)
	assert.Zero(t, testutil.CountRows(t, db, &db_models.Account{}))
}

func TestUpdateMemberInfo(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.SeedReference(t, db)
	svc := NewMemberService(db, fixedClock(2024, time.January, 15), zap.NewNop())
	ctx := context.Background()

	member, err := svc.RegisterMember(ctx, registerRequest("alice", seed.Monthly.SubscriptionID))
	require.NoError(t, err)

	update := request_models.UpdateMemberRequest{
		MemberID: member.MemberID,
		Username: "alice.s",
		Password: "new",
		MemberProfile: request_models.MemberProfile{
			FirstName:      "Alice",
			LastName:       "Jones",
			Email:          "alice@jones.example",
			DateOfBirth:    member.DateOfBirth,
			Height:         171,
			Weight:         58,
			SubscriptionID: seed.Annual.SubscriptionID,
			CardNumber:     "5500000000000004",
		},
	}
	require.NoError(t, svc.UpdateMemberInfo(ctx, update))

	stored := testutil.FindMember(t, db, member.MemberID)
	require.NotNil(t, stored)
	assert.Equal(t, "Jones", stored.LastName)
	assert.Equal(t, seed.Annual.SubscriptionID, stored.SubscriptionID)
	assert.Equal(t, "2024-02-15", stored.NextPayDate.String())

	accounts, err := repositories.NewAccountRepository(db).FindByCredentials(ctx, "alice.s", "new")
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestUpdateMemberInfoRollsBackWhenCredentialsFail(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.SeedReference(t, db)
	svc := NewMemberService(db, fixedClock(2024, time.January, 15), zap.NewNop())
	ctx := context.Background()

	member, err := svc.RegisterMember(ctx, registerRequest("alice", seed.Monthly.SubscriptionID))
	require.NoError(t, err)
	testutil.FailUpdates(t, db, "account")

	update := request_models.UpdateMemberRequest{
		MemberID:      member.MemberID,
		Username:      "alice.s",
		Password:      "new",
		MemberProfile: registerRequest("alice", seed.Annual.SubscriptionID).MemberProfile,
	}
	update.LastName = "Changed"

	err = svc.UpdateMemberInfo(ctx, update)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update account")

	stored := testutil.FindMember(t, db, member.MemberID)
	require.NotNil(t, stored)
	assert.Equal(t, "Smith", stored.LastName)
	assert.Equal(t, seed.Monthly.SubscriptionID, stored.SubscriptionID)

	accounts, err := repositories.NewAccountRepository(db).FindByCredentials(ctx, "alice", "p")
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
