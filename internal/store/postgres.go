package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/scanner"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgresStore backend transactionnel. L'upsert ON CONFLICT remplace la
// réécriture complète du fichier : l'invariant "un enregistrement par
// identité" tient sans course lecture-écriture.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) AddOrUpdateUser(ctx context.Context, a model.Analytics) (*model.UserSpendingRecord, error) {
	record := model.UserSpendingRecord{
		ID:                utils.GenerateRecordID(),
		CustomerName:      a.CustomerName,
		CustomerID:        a.CustomerID,
		Email:             a.Email,
		TotalSpend:        a.TotalSpend,
		TotalOrders:       a.TotalOrders,
		AverageOrderValue: a.AverageOrderValue,
		MonthlySpend:      a.MonthlySpend,
		OrderFrequency:    a.OrderFrequency,
		CancellationRate:  a.CancellationRate,
		LastOrderAge:      a.LastOrderAge,
		Addresses:         a.Addresses,
		LastUpdated:       time.Now().UTC(),
		VerifiedBy:        VerifiedBy,
	}

	addresses, _ := json.Marshal(a.Addresses)

	// l'id candidat n'est retenu qu'à la première insertion : en cas de
	// conflit, RETURNING renvoie l'id déjà assigné
	err := s.pool.QueryRow(ctx, `
		INSERT INTO spend_records (
			id, customer_id, customer_name, email,
			total_spend, total_orders, average_order_value,
			monthly_spend, order_frequency, cancellation_rate,
			last_order_age, addresses, verified_by, last_updated
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,NOW())
		ON CONFLICT (customer_id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			email = EXCLUDED.email,
			total_spend = EXCLUDED.total_spend,
			total_orders = EXCLUDED.total_orders,
			average_order_value = EXCLUDED.average_order_value,
			monthly_spend = EXCLUDED.monthly_spend,
			order_frequency = EXCLUDED.order_frequency,
			cancellation_rate = EXCLUDED.cancellation_rate,
			last_order_age = EXCLUDED.last_order_age,
			addresses = EXCLUDED.addresses,
			verified_by = EXCLUDED.verified_by,
			last_updated = NOW()
		RETURNING id, last_updated
	`,
		record.ID, record.CustomerID, record.CustomerName, record.Email,
		record.TotalSpend, record.TotalOrders, record.AverageOrderValue,
		record.MonthlySpend, record.OrderFrequency, record.CancellationRate,
		record.LastOrderAge, addresses, record.VerifiedBy,
	).Scan(&record.ID, &record.LastUpdated)

	if err != nil {
		// écriture perdue, masquée : l'appelant reçoit le record construit
		utils.LogError("could not upsert spend record: %v", err)
	}

	return &record, nil
}

func (s *PostgresStore) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		WITH ranked AS (
			SELECT
				id, customer_id, customer_name,
				total_spend, total_orders, average_order_value, monthly_spend,
				ROW_NUMBER() OVER (ORDER BY total_spend DESC, seq ASC) AS rank,
				last_updated
			FROM spend_records
		)
		SELECT
			id, customer_id, customer_name,
			total_spend, total_orders, average_order_value, monthly_spend,
			rank, last_updated
		FROM ranked
		ORDER BY rank
		LIMIT $1
	`, limit)
	if err != nil {
		utils.LogError("could not query leaderboard: %v", err)
		return nil, nil
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		entry, err := scanner.ScanLeaderboardEntry(rows)
		if err != nil {
			utils.LogError("could not scan leaderboard row: %v", err)
			return nil, nil
		}
		entry.RoastLevel = SpendLabel(entry.TotalSpend)
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (s *PostgresStore) GetUserRank(ctx context.Context, customerID string) (*model.UserRank, error) {
	var rank, total int
	err := s.pool.QueryRow(ctx, `
		WITH ranked AS (
			SELECT
				customer_id,
				ROW_NUMBER() OVER (ORDER BY total_spend DESC, seq ASC) AS rank
			FROM spend_records
		),
		total_count AS (
			SELECT COUNT(*) AS total FROM spend_records
		)
		SELECT r.rank, t.total
		FROM ranked r, total_count t
		WHERE r.customer_id = $1
	`, customerID).Scan(&rank, &total)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		utils.LogError("could not fetch user rank: %v", err)
		return nil, nil
	}

	return &model.UserRank{
		Rank:       rank,
		TotalUsers: total,
		Percentile: Percentile(rank, total),
	}, nil
}

func (s *PostgresStore) GetTotalUsers(ctx context.Context) (int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM spend_records`).Scan(&total); err != nil {
		utils.LogError("could not count users: %v", err)
		return 0, nil
	}
	return total, nil
}

func (s *PostgresStore) GetSpendingStats(ctx context.Context) (*model.SpendingStats, error) {
	stats := &model.SpendingStats{}

	err := s.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_spend), 0),
			COALESCE(SUM(total_orders), 0),
			COALESCE(AVG(total_spend), 0)
		FROM spend_records
	`).Scan(&stats.TotalSpent, &stats.TotalOrders, &stats.AverageSpending)
	if err != nil {
		utils.LogError("could not aggregate spending stats: %v", err)
		return stats, nil
	}

	top, err := scanner.ScanSpendingRecord(s.pool.QueryRow(ctx, `
		SELECT
			id, customer_id, customer_name, email,
			total_spend, total_orders, average_order_value,
			monthly_spend, order_frequency, cancellation_rate,
			last_order_age, addresses, verified_by, last_updated
		FROM spend_records
		ORDER BY total_spend DESC, seq ASC
		LIMIT 1
	`))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			utils.LogError("could not fetch top spender: %v", err)
		}
		return stats, nil
	}
	stats.TopSpender = top

	return stats, nil
}

func (s *PostgresStore) SaveRoast(ctx context.Context, customerID string, analysis model.RoastAnalysis) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO roast_history (
			id, customer_id, overall_roast, spending_shame,
			roast_level, roast_score, burn_degree,
			fun_facts, roast_emojis, created_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
	`,
		utils.GenerateRoastID(), customerID,
		analysis.OverallRoast, analysis.SpendingShame,
		string(analysis.RoastLevel), analysis.RoastScore, string(analysis.BurnDegree),
		pq.Array(analysis.FunFacts), pq.Array(analysis.RoastEmojis),
	)
	if err != nil {
		utils.LogError("could not archive roast: %v", err)
	}
	return nil
}

func (s *PostgresStore) GetRoastHistory(ctx context.Context, customerID string, limit int) ([]model.RoastRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT
			id, customer_id, overall_roast, spending_shame,
			roast_level, roast_score, burn_degree,
			fun_facts, roast_emojis, created_at
		FROM roast_history
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, customerID, limit)
	if err != nil {
		utils.LogError("could not query roast history: %v", err)
		return nil, nil
	}
	defer rows.Close()

	var history []model.RoastRecord
	for rows.Next() {
		record, err := scanner.ScanRoastRecord(rows)
		if err != nil {
			utils.LogError("could not scan roast history row: %v", err)
			return nil, nil
		}
		history = append(history, *record)
	}
	return history, nil
}
