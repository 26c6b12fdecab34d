package model

import "time"

// UserSpendingRecord entité persistée : un enregistrement unique par customerId.
// L'id est assigné à la première insertion et n'est jamais réassigné.
type UserSpendingRecord struct {
	ID                string            `json:"id"`
	CustomerName      string            `json:"customerName"`
	CustomerID        string            `json:"customerId"`
	Email             string            `json:"email"`
	TotalSpend        float64           `json:"totalSpend"`
	TotalOrders       int               `json:"totalOrders"`
	AverageOrderValue float64           `json:"averageOrderValue"`
	MonthlySpend      float64           `json:"monthlySpend"`
	OrderFrequency    float64           `json:"orderFrequency"`
	CancellationRate  float64           `json:"cancellationRate"`
	LastOrderAge      string            `json:"lastOrderAge,omitempty"`
	Addresses         map[string]string `json:"addresses,omitempty"`
	LastUpdated       time.Time         `json:"lastUpdated"`
	VerifiedBy        string            `json:"verifiedBy"`
}

// LeaderboardEntry projection en lecture seule d'un enregistrement,
// avec rang dense 1-based calculé au moment de la requête
type LeaderboardEntry struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customerName"`
	CustomerID        string    `json:"customerId"`
	TotalSpend        float64   `json:"totalSpend"`
	TotalOrders       int       `json:"totalOrders"`
	AverageOrderValue float64   `json:"averageOrderValue"`
	MonthlySpend      float64   `json:"monthlySpend"`
	Rank              int       `json:"rank"`
	RoastLevel        string    `json:"roastLevel"`
	CreatedAt         time.Time `json:"createdAt"`
	IsCurrentUser     bool      `json:"isCurrentUser,omitempty"`
}

// UserRank position d'un utilisateur dans le classement global
type UserRank struct {
	Rank       int `json:"rank"`
	TotalUsers int `json:"totalUsers"`
	Percentile int `json:"percentile"` // 0-100, part de la population au rang ou en dessous
}

// SpendingStats statistiques agrégées sur toute la collection
type SpendingStats struct {
	TotalSpent      float64             `json:"totalSpent"`
	TotalOrders     int                 `json:"totalOrders"`
	AverageSpending float64             `json:"averageSpending"`
	TopSpender      *UserSpendingRecord `json:"topSpender"`
}
