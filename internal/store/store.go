package store

import (
	"context"
	"math"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
)

// VerifiedBy tag de provenance des enregistrements
const VerifiedBy = "reclaim"

// Store collection durable d'un enregistrement de dépenses par identité.
// Les pannes d'I/O sont loguées et masquées : les lectures dégradent vers
// une collection vide, les écritures échouées sont abandonnées ; l'appelant
// reçoit toujours un résultat d'apparence normale.
type Store interface {
	// AddOrUpdateUser insère ou écrase l'enregistrement du customerId,
	// en préservant l'id existant
	AddOrUpdateUser(ctx context.Context, a model.Analytics) (*model.UserSpendingRecord, error)

	// GetLeaderboard trie par dépenses décroissantes (stable) et assigne
	// les rangs denses 1-based sur les `limit` premiers
	GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)

	// GetUserRank retourne (nil, nil) si l'identité est inconnue
	GetUserRank(ctx context.Context, customerID string) (*model.UserRank, error)

	GetTotalUsers(ctx context.Context) (int, error)
	GetSpendingStats(ctx context.Context) (*model.SpendingStats, error)

	// Historique des roasts archivés par utilisateur
	SaveRoast(ctx context.Context, customerID string, analysis model.RoastAnalysis) error
	GetRoastHistory(ctx context.Context, customerID string, limit int) ([]model.RoastRecord, error)
}

// SpendLabel label du leaderboard dérivé des dépenses totales.
// Échelle volontairement distincte des niveaux de roast (3000/8000/15000).
func SpendLabel(totalSpend float64) string {
	if totalSpend < 1500 {
		return "Mild Spender"
	}
	if totalSpend < 3000 {
		return "Regular Burner"
	}
	if totalSpend < 5000 {
		return "Savage Spender"
	}
	return "Nuclear Wallet"
}

// Percentile part de la population au rang donné ou en dessous, 0-100
func Percentile(rank, totalUsers int) int {
	if totalUsers <= 0 {
		return 0
	}
	return int(math.Round(float64(totalUsers-rank+1) / float64(totalUsers) * 100))
}
