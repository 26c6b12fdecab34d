package service

import (
	"context"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/store"
)

// LeaderboardService côté lecture du classement ; fine composition
// au-dessus du Store, sans état propre
type LeaderboardService struct {
	store store.Store
}

func NewLeaderboardService(st store.Store) *LeaderboardService {
	return &LeaderboardService{store: st}
}

// GetLeaderboard top `limit` du classement. Si currentUserID est fourni,
// marque son entrée et joint son rang global.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, limit int, currentUserID string) (*model.LeaderboardResult, error) {
	entries, err := s.store.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].IsCurrentUser = currentUserID != "" && entries[i].CustomerID == currentUserID
	}

	totalUsers, err := s.store.GetTotalUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.LeaderboardResult{
		Leaderboard: entries,
		TotalUsers:  totalUsers,
	}

	if currentUserID != "" {
		ranking, err := s.store.GetUserRank(ctx, currentUserID)
		if err != nil {
			return nil, err
		}
		if ranking != nil {
			result.UserRank = &ranking.Rank
		}
	}

	return result, nil
}

// GetUserRank retourne nil si l'identité n'est pas dans le classement
func (s *LeaderboardService) GetUserRank(ctx context.Context, customerID string) (*model.UserRank, error) {
	return s.store.GetUserRank(ctx, customerID)
}

// GetStats statistiques globales + top 5 des dépensiers
func (s *LeaderboardService) GetStats(ctx context.Context) (*model.StatsResult, error) {
	stats, err := s.store.GetSpendingStats(ctx)
	if err != nil {
		return nil, err
	}

	topSpenders, err := s.store.GetLeaderboard(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &model.StatsResult{
		Stats:       *stats,
		TopSpenders: topSpenders,
	}, nil
}

// GetRoastHistory roasts archivés d'un utilisateur, du plus récent au plus ancien
func (s *LeaderboardService) GetRoastHistory(ctx context.Context, customerID string, limit int) ([]model.RoastRecord, error) {
	return s.store.GetRoastHistory(ctx, customerID, limit)
}
