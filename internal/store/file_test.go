package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "data", "leaderboard.json"))
}

func analyticsFor(customerID, name string, spend float64) model.Analytics {
	return model.Analytics{
		CustomerName:      name,
		CustomerID:        customerID,
		Email:             customerID + "@example.com",
		TotalOrders:       20,
		TotalSpend:        spend,
		AverageOrderValue: spend / 20,
		MonthlySpend:      spend / 12,
		OrderFrequency:    1.7,
		CancellationRate:  0.02,
		LastOrderAge:      "2 days ago",
	}
}

func TestFileStoreCreatesFileOnDemand(t *testing.T) {
	s := newTestStore(t)

	total, err := s.GetTotalUsers(context.Background())

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.FileExists(t, s.path)
}

func TestFileStoreAddThenUpdatePreservesID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddOrUpdateUser(ctx, analyticsFor("cust-1", "Ravi", 2000))
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, VerifiedBy, first.VerifiedBy)

	second, err := s.AddOrUpdateUser(ctx, analyticsFor("cust-1", "Ravi", 9000))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9000.0, second.TotalSpend)

	total, err := s.GetTotalUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestFileStoreLeaderboardOrderingAndLabels(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddOrUpdateUser(ctx, analyticsFor("cust-a", "Amit", 2000))
	require.NoError(t, err)
	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-b", "Bela", 10000))
	require.NoError(t, err)
	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-c", "Chitra", 4000))
	require.NoError(t, err)

	entries, err := s.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "cust-b", entries[0].CustomerID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Nuclear Wallet", entries[0].RoastLevel)

	assert.Equal(t, "cust-c", entries[1].CustomerID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Savage Spender", entries[1].RoastLevel)

	assert.Equal(t, "cust-a", entries[2].CustomerID)
	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, "Regular Burner", entries[2].RoastLevel)
}

func TestFileStoreLeaderboardLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, a := range []model.Analytics{
		analyticsFor("cust-a", "Amit", 1000),
		analyticsFor("cust-b", "Bela", 2000),
		analyticsFor("cust-c", "Chitra", 3000),
	} {
		_, err := s.AddOrUpdateUser(ctx, a)
		require.NoError(t, err)
	}

	entries, err := s.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "cust-c", entries[0].CustomerID)
}

func TestFileStoreTieKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddOrUpdateUser(ctx, analyticsFor("cust-first", "Amit", 5000))
	require.NoError(t, err)
	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-second", "Bela", 5000))
	require.NoError(t, err)

	entries, err := s.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "cust-first", entries[0].CustomerID)
	assert.Equal(t, "cust-second", entries[1].CustomerID)
}

func TestFileStoreUserRankAndPercentile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddOrUpdateUser(ctx, analyticsFor("cust-top", "Amit", 9000))
	require.NoError(t, err)
	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-mid", "Bela", 5000))
	require.NoError(t, err)
	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-low", "Chitra", 1000))
	require.NoError(t, err)
	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-floor", "Dev", 500))
	require.NoError(t, err)

	top, err := s.GetUserRank(ctx, "cust-top")
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, 4, top.TotalUsers)
	assert.Equal(t, 100, top.Percentile)

	floor, err := s.GetUserRank(ctx, "cust-floor")
	require.NoError(t, err)
	require.NotNil(t, floor)
	assert.Equal(t, 4, floor.Rank)
	assert.Equal(t, 25, floor.Percentile)
}

func TestFileStoreUserRankUnknownUser(t *testing.T) {
	s := newTestStore(t)

	rank, err := s.GetUserRank(context.Background(), "cust-ghost")

	require.NoError(t, err)
	assert.Nil(t, rank)
}

func TestFileStoreSingleUserPercentileIsHundred(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddOrUpdateUser(ctx, analyticsFor("cust-solo", "Solo", 42))
	require.NoError(t, err)

	rank, err := s.GetUserRank(ctx, "cust-solo")
	require.NoError(t, err)
	require.NotNil(t, rank)
	assert.Equal(t, 1, rank.Rank)
	assert.Equal(t, 100, rank.Percentile)
}

func TestFileStoreStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.GetSpendingStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalSpent)
	assert.Nil(t, empty.TopSpender)

	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-a", "Amit", 3000))
	require.NoError(t, err)
	_, err = s.AddOrUpdateUser(ctx, analyticsFor("cust-b", "Bela", 7000))
	require.NoError(t, err)

	stats, err := s.GetSpendingStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, stats.TotalSpent)
	assert.Equal(t, 40, stats.TotalOrders)
	assert.Equal(t, 5000.0, stats.AverageSpending)
	require.NotNil(t, stats.TopSpender)
	assert.Equal(t, "cust-b", stats.TopSpender.CustomerID)
}

func TestFileStoreCorruptFileDegradesToEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddOrUpdateUser(ctx, analyticsFor("cust-a", "Amit", 3000))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0644))

	total, err := s.GetTotalUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	entries, err := s.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStoreRoastHistoryRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	analysis := model.RoastAnalysis{
		OverallRoast:  "First roast",
		SpendingShame: "Shame one",
		RoastLevel:    model.RoastLevelMedium,
		RoastScore:    55,
		BurnDegree:    model.BurnDegreeThird,
		FunFacts:      []string{"a", "b", "c"},
		RoastEmojis:   []string{"🔥", "😂", "💸"},
	}
	require.NoError(t, s.SaveRoast(ctx, "cust-a", analysis))

	analysis.OverallRoast = "Second roast"
	require.NoError(t, s.SaveRoast(ctx, "cust-a", analysis))
	require.NoError(t, s.SaveRoast(ctx, "cust-other", analysis))

	history, err := s.GetRoastHistory(ctx, "cust-a", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// du plus récent au plus ancien
	assert.Equal(t, "Second roast", history[0].OverallRoast)
	assert.Equal(t, "First roast", history[1].OverallRoast)
	assert.Equal(t, model.RoastLevelMedium, history[0].RoastLevel)
	assert.Equal(t, []string{"🔥", "😂", "💸"}, history[0].RoastEmojis)

	limited, err := s.GetRoastHistory(ctx, "cust-a", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Second roast", limited[0].OverallRoast)
}

func TestSpendLabelScale(t *testing.T) {
	assert.Equal(t, "Mild Spender", SpendLabel(0))
	assert.Equal(t, "Mild Spender", SpendLabel(1499))
	assert.Equal(t, "Regular Burner", SpendLabel(1500))
	assert.Equal(t, "Regular Burner", SpendLabel(2999))
	assert.Equal(t, "Savage Spender", SpendLabel(3000))
	assert.Equal(t, "Savage Spender", SpendLabel(4999))
	assert.Equal(t, "Nuclear Wallet", SpendLabel(5000))
}

func TestPercentile(t *testing.T) {
	assert.Equal(t, 100, Percentile(1, 1))
	assert.Equal(t, 100, Percentile(1, 10))
	assert.Equal(t, 10, Percentile(10, 10))
	assert.Equal(t, 75, Percentile(2, 4))
	assert.Equal(t, 0, Percentile(1, 0))
}
