package service

import (
	"context"
	"path/filepath"
	"testing"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboardService(t *testing.T) (*LeaderboardService, store.Store) {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "leaderboard.json"))
	return NewLeaderboardService(st), st
}

func seedUsers(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()
	users := []model.Analytics{
		{CustomerID: "cust-a", CustomerName: "Amit", TotalSpend: 9000, TotalOrders: 30},
		{CustomerID: "cust-b", CustomerName: "Bela", TotalSpend: 4000, TotalOrders: 18},
		{CustomerID: "cust-c", CustomerName: "Chitra", TotalSpend: 1200, TotalOrders: 6},
	}
	for _, a := range users {
		_, err := st.AddOrUpdateUser(ctx, a)
		require.NoError(t, err)
	}
}

func TestGetLeaderboardMarksCurrentUser(t *testing.T) {
	svc, st := newLeaderboardService(t)
	seedUsers(t, st)

	result, err := svc.GetLeaderboard(context.Background(), 10, "cust-b")

	require.NoError(t, err)
	require.Len(t, result.Leaderboard, 3)
	assert.Equal(t, 3, result.TotalUsers)

	assert.False(t, result.Leaderboard[0].IsCurrentUser)
	assert.True(t, result.Leaderboard[1].IsCurrentUser)
	assert.False(t, result.Leaderboard[2].IsCurrentUser)

	require.NotNil(t, result.UserRank)
	assert.Equal(t, 2, *result.UserRank)
}

func TestGetLeaderboardWithoutCurrentUser(t *testing.T) {
	svc, st := newLeaderboardService(t)
	seedUsers(t, st)

	result, err := svc.GetLeaderboard(context.Background(), 10, "")

	require.NoError(t, err)
	assert.Nil(t, result.UserRank)
	for _, entry := range result.Leaderboard {
		assert.False(t, entry.IsCurrentUser)
	}
}

func TestGetLeaderboardUnknownCurrentUser(t *testing.T) {
	svc, st := newLeaderboardService(t)
	seedUsers(t, st)

	result, err := svc.GetLeaderboard(context.Background(), 10, "cust-ghost")

	require.NoError(t, err)
	assert.Nil(t, result.UserRank)
}

func TestGetStats(t *testing.T) {
	svc, st := newLeaderboardService(t)
	seedUsers(t, st)

	result, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 14200.0, result.Stats.TotalSpent)
	assert.Equal(t, 54, result.Stats.TotalOrders)
	require.NotNil(t, result.Stats.TopSpender)
	assert.Equal(t, "cust-a", result.Stats.TopSpender.CustomerID)
	require.Len(t, result.TopSpenders, 3)
	assert.Equal(t, 1, result.TopSpenders[0].Rank)
}

func TestGetUserRankPassesThrough(t *testing.T) {
	svc, st := newLeaderboardService(t)
	seedUsers(t, st)

	rank, err := svc.GetUserRank(context.Background(), "cust-c")
	require.NoError(t, err)
	require.NotNil(t, rank)
	assert.Equal(t, 3, rank.Rank)

	missing, err := svc.GetUserRank(context.Background(), "cust-ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
