package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/utils"
)

// FileStore collection adossée à un fichier JSON plat, réécrit en entier à
// chaque mutation. Pas de verrou : deux écritures entrelacées peuvent se
// perdre (un seul process, ordonnancement coopératif). C'est le backend de
// dev ; en production, préférer PostgresStore qui fait des upserts atomiques.
type FileStore struct {
	path      string
	roastPath string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:      path,
		roastPath: filepath.Join(filepath.Dir(path), "roasts.json"),
	}
}

func (s *FileStore) AddOrUpdateUser(ctx context.Context, a model.Analytics) (*model.UserSpendingRecord, error) {
	records := s.readRecords()

	existing := -1
	for i, r := range records {
		if r.CustomerID == a.CustomerID {
			existing = i
			break
		}
	}

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

	if existing >= 0 {
		// l'id est assigné à la première insertion, jamais réassigné
		record.ID = records[existing].ID
		records[existing] = record
	} else {
		records = append(records, record)
	}

	s.writeRecords(records)
	return &record, nil
}

func (s *FileStore) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	records := s.readRecords()
	sortBySpend(records)

	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	entries := make([]model.LeaderboardEntry, 0, len(records))
	for i, r := range records {
		entries = append(entries, model.LeaderboardEntry{
			ID:                r.ID,
			CustomerName:      r.CustomerName,
			CustomerID:        r.CustomerID,
			TotalSpend:        r.TotalSpend,
			TotalOrders:       r.TotalOrders,
			AverageOrderValue: r.AverageOrderValue,
			MonthlySpend:      r.MonthlySpend,
			Rank:              i + 1,
			RoastLevel:        SpendLabel(r.TotalSpend),
			CreatedAt:         r.LastUpdated,
		})
	}
	return entries, nil
}

func (s *FileStore) GetUserRank(ctx context.Context, customerID string) (*model.UserRank, error) {
	records := s.readRecords()
	sortBySpend(records)

	for i, r := range records {
		if r.CustomerID == customerID {
			rank := i + 1
			total := len(records)
			return &model.UserRank{
				Rank:       rank,
				TotalUsers: total,
				Percentile: Percentile(rank, total),
			}, nil
		}
	}
	return nil, nil
}

func (s *FileStore) GetTotalUsers(ctx context.Context) (int, error) {
	return len(s.readRecords()), nil
}

func (s *FileStore) GetSpendingStats(ctx context.Context) (*model.SpendingStats, error) {
	records := s.readRecords()

	stats := &model.SpendingStats{}
	if len(records) == 0 {
		return stats, nil
	}

	for _, r := range records {
		stats.TotalSpent += r.TotalSpend
		stats.TotalOrders += r.TotalOrders
	}
	stats.AverageSpending = stats.TotalSpent / float64(len(records))

	sortBySpend(records)
	top := records[0]
	stats.TopSpender = &top

	return stats, nil
}

func (s *FileStore) SaveRoast(ctx context.Context, customerID string, analysis model.RoastAnalysis) error {
	if err := os.MkdirAll(filepath.Dir(s.roastPath), 0755); err != nil {
		utils.LogError("could not create data directory: %v", err)
		return nil
	}
	roasts := s.readRoasts()
	roasts = append(roasts, model.RoastRecord{
		ID:            utils.GenerateRoastID(),
		CustomerID:    customerID,
		OverallRoast:  analysis.OverallRoast,
		SpendingShame: analysis.SpendingShame,
		RoastLevel:    analysis.RoastLevel,
		RoastScore:    analysis.RoastScore,
		BurnDegree:    analysis.BurnDegree,
		FunFacts:      analysis.FunFacts,
		RoastEmojis:   analysis.RoastEmojis,
		CreatedAt:     time.Now().UTC(),
	})

	data, err := json.MarshalIndent(roasts, "", "  ")
	if err != nil {
		utils.LogError("could not encode roast history: %v", err)
		return nil
	}
	if err := os.WriteFile(s.roastPath, data, 0644); err != nil {
		// écriture abandonnée, l'appelant n'est pas interrompu
		utils.LogError("could not write roast history: %v", err)
	}
	return nil
}

func (s *FileStore) GetRoastHistory(ctx context.Context, customerID string, limit int) ([]model.RoastRecord, error) {
	roasts := s.readRoasts()

	var history []model.RoastRecord
	for i := len(roasts) - 1; i >= 0; i-- { // du plus récent au plus ancien
		if roasts[i].CustomerID == customerID {
			history = append(history, roasts[i])
			if limit > 0 && len(history) == limit {
				break
			}
		}
	}
	return history, nil
}

// ensureFile crée le fichier avec une collection vide s'il n'existe pas.
// Idempotent : un deuxième appel concurrent ne l'écrase pas.
func (s *FileStore) ensureFile() {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		utils.LogError("could not create data directory: %v", err)
		return
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, []byte("[]"), 0644); err != nil {
			utils.LogError("could not create store file: %v", err)
		}
	}
}

func (s *FileStore) readRecords() []model.UserSpendingRecord {
	s.ensureFile()

	data, err := os.ReadFile(s.path)
	if err != nil {
		utils.LogError("could not read store file: %v", err)
		return nil
	}

	var records []model.UserSpendingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// fichier corrompu : lecture dégradée vers une collection vide
		utils.LogError("could not decode store file: %v", err)
		return nil
	}
	return records
}

func (s *FileStore) writeRecords(records []model.UserSpendingRecord) {
	s.ensureFile()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		utils.LogError("could not encode store file: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		utils.LogError("could not write store file: %v", err)
	}
}

func (s *FileStore) readRoasts() []model.RoastRecord {
	data, err := os.ReadFile(s.roastPath)
	if err != nil {
		return nil
	}
	var roasts []model.RoastRecord
	if err := json.Unmarshal(data, &roasts); err != nil {
		utils.LogError("could not decode roast history: %v", err)
		return nil
	}
	return roasts
}

// sortBySpend tri stable par dépenses décroissantes ; les égalités
// conservent l'ordre d'insertion
func sortBySpend(records []model.UserSpendingRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TotalSpend > records[j].TotalSpend
	})
}
