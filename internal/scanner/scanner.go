package scanner

import (
	"encoding/json"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
	"github.com/lib/pq"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanSpendingRecord scanne une ligne SQL vers un UserSpendingRecord.
// Les adresses sont stockées en JSONB et décodées ici.
func ScanSpendingRecord(sc rowScanner) (*model.UserSpendingRecord, error) {
	var r model.UserSpendingRecord
	var addresses []byte

	err := sc.Scan(
		&r.ID, &r.CustomerID, &r.CustomerName, &r.Email,
		&r.TotalSpend, &r.TotalOrders, &r.AverageOrderValue,
		&r.MonthlySpend, &r.OrderFrequency, &r.CancellationRate,
		&r.LastOrderAge, &addresses, &r.VerifiedBy, &r.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	if len(addresses) > 0 {
		_ = json.Unmarshal(addresses, &r.Addresses)
	}

	return &r, nil
}

// ScanLeaderboardEntry scanne une ligne de classement (avec rang calculé en SQL)
func ScanLeaderboardEntry(sc rowScanner) (*model.LeaderboardEntry, error) {
	var e model.LeaderboardEntry

	err := sc.Scan(
		&e.ID, &e.CustomerID, &e.CustomerName,
		&e.TotalSpend, &e.TotalOrders, &e.AverageOrderValue, &e.MonthlySpend,
		&e.Rank, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// ScanRoastRecord scanne une ligne d'historique avec pq.Array pour les
// colonnes TEXT[]
func ScanRoastRecord(sc rowScanner) (*model.RoastRecord, error) {
	var r model.RoastRecord

	err := sc.Scan(
		&r.ID, &r.CustomerID, &r.OverallRoast, &r.SpendingShame,
		&r.RoastLevel, &r.RoastScore, &r.BurnDegree,
		pq.Array(&r.FunFacts), pq.Array(&r.RoastEmojis),
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}
