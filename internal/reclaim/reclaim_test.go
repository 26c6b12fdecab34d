package reclaim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proofPayload() map[string]interface{} {
	return map[string]interface{}{
		"publicData": map[string]interface{}{
			"data": map[string]interface{}{
				"name":        "Ravi",
				"customer_id": "cust-42",
				"email":       "ravi@example.com",
				"analysis": map[string]interface{}{
					"last12MonthOrders": map[string]interface{}{
						"totalSpend":          "4500.50",
						"totalOrders":         24.0,
						"averageOrderValue":   187.5,
						"averageMonthlySpend": 375.0,
						"cancellationRatio":   0.05,
					},
					"address": map[string]interface{}{
						"lastDeliveryAge": "3 days ago",
						"allAddresses": map[string]interface{}{
							"Home": "12 MG Road, Bangalore",
							"Work": "Tech Park, Whitefield",
						},
					},
				},
			},
		},
	}
}

func TestParseAnalyticsNestedPayload(t *testing.T) {
	analytics, ok := ParseAnalytics(proofPayload())

	require.True(t, ok)
	assert.Equal(t, "Ravi", analytics.CustomerName)
	assert.Equal(t, "cust-42", analytics.CustomerID)
	assert.Equal(t, "ravi@example.com", analytics.Email)
	assert.Equal(t, 24, analytics.TotalOrders)
	assert.Equal(t, 4500.50, analytics.TotalSpend) // coercé depuis une chaîne
	assert.Equal(t, 187.5, analytics.AverageOrderValue)
	assert.Equal(t, 375.0, analytics.MonthlySpend)
	assert.Equal(t, 2.0, analytics.OrderFrequency) // 24 commandes / 12 mois
	assert.Equal(t, 0.05, analytics.CancellationRate)
	assert.Equal(t, "3 days ago", analytics.LastOrderAge)
	assert.Equal(t, "12 MG Road, Bangalore", analytics.Addresses["Home"])
}

func TestParseAnalyticsArrayWrapped(t *testing.T) {
	payload := []interface{}{proofPayload()}

	analytics, ok := ParseAnalytics(payload)

	require.True(t, ok)
	assert.Equal(t, "cust-42", analytics.CustomerID)
}

func TestParseAnalyticsShapeNotRecognized(t *testing.T) {
	cases := []interface{}{
		nil,
		"not a map",
		map[string]interface{}{"foo": "bar"},
		map[string]interface{}{"publicData": map[string]interface{}{}},
		map[string]interface{}{"publicData": map[string]interface{}{
			"data": map[string]interface{}{"analysis": map[string]interface{}{}},
		}},
		[]interface{}{},
	}

	for _, payload := range cases {
		analytics, ok := ParseAnalytics(payload)
		assert.False(t, ok)
		assert.Nil(t, analytics)
	}
}

func TestParseAnalyticsDefaultsMissingFields(t *testing.T) {
	payload := map[string]interface{}{
		"publicData": map[string]interface{}{
			"data": map[string]interface{}{
				"analysis": map[string]interface{}{
					"last12MonthOrders": map[string]interface{}{
						"totalSpend": "not a number",
					},
				},
			},
		},
	}

	analytics, ok := ParseAnalytics(payload)

	require.True(t, ok)
	assert.Equal(t, DefaultName, analytics.CustomerName)
	assert.Equal(t, DefaultID, analytics.CustomerID)
	assert.Equal(t, DefaultEmail, analytics.Email)
	assert.Zero(t, analytics.TotalSpend)
	assert.Zero(t, analytics.TotalOrders)
	assert.Zero(t, analytics.CancellationRate)
	assert.Equal(t, "Unknown", analytics.LastOrderAge)
	assert.Empty(t, analytics.Addresses)
}

func TestMockAnalyticsWithinBounds(t *testing.T) {
	c := New(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		m := c.MockAnalytics("Demo User")

		assert.Equal(t, "Demo User", m.CustomerName)
		assert.GreaterOrEqual(t, m.TotalSpend, 1000.0)
		assert.LessOrEqual(t, m.TotalSpend, 6000.0)
		assert.GreaterOrEqual(t, m.TotalOrders, 10)
		assert.LessOrEqual(t, m.TotalOrders, 40)
		assert.GreaterOrEqual(t, m.CancellationRate, 0.0)
		assert.LessOrEqual(t, m.CancellationRate, 0.1)
		assert.NotEmpty(t, m.CustomerID)
		assert.NotEmpty(t, m.Addresses)
	}
}

func TestMockAnalyticsPinnedRNGIsReproducible(t *testing.T) {
	a := New(rand.New(rand.NewSource(7))).MockAnalytics("Demo")
	b := New(rand.New(rand.NewSource(7))).MockAnalytics("Demo")

	assert.Equal(t, a.TotalSpend, b.TotalSpend)
	assert.Equal(t, a.TotalOrders, b.TotalOrders)
	assert.Equal(t, a.CancellationRate, b.CancellationRate)
}

func TestMockNameFromClaimParameters(t *testing.T) {
	payload := map[string]interface{}{
		"claimData": map[string]interface{}{
			"parameters": `{"paramValues":{"customerName":"Priya"}}`,
		},
	}

	assert.Equal(t, "Priya", MockName(payload))
	assert.Equal(t, "Demo User", MockName(map[string]interface{}{}))
	assert.Equal(t, "Demo User", MockName(nil))
}
