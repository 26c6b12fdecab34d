package model

// Analytics contient les données de dépenses Swiggy d'un utilisateur,
// normalisées depuis une preuve Reclaim (ou générées pour la démo).
// Immuable une fois construit.
type Analytics struct {
	CustomerName      string            `json:"customerName"`
	CustomerID        string            `json:"customerId"`
	Email             string            `json:"email"`
	TotalOrders       int               `json:"totalOrders"`
	TotalSpend        float64           `json:"totalSpend"`
	AverageOrderValue float64           `json:"averageOrderValue"`
	MonthlySpend      float64           `json:"monthlySpend"`
	OrderFrequency    float64           `json:"orderFrequency"` // commandes par mois
	CancellationRate  float64           `json:"cancellationRate"`
	LastOrderAge      string            `json:"lastOrderAge"`
	Addresses         map[string]string `json:"addresses"`
}
