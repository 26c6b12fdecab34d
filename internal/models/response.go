package model

// RoastResult réponse du parcours submit-analytics (POST /roast)
type RoastResult struct {
	RoastAnalysis    RoastAnalysis    `json:"roastAnalysis"`
	Analytics        Analytics        `json:"analytics"`
	UserRanking      UserRank         `json:"userRanking"`
	LeaderboardEntry LeaderboardEntry `json:"leaderboardEntry"`
}

// LeaderboardResult réponse du parcours fetch-leaderboard (GET /leaderboard)
type LeaderboardResult struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	TotalUsers  int                `json:"totalUsers"`
	UserRank    *int               `json:"userRank,omitempty"`
}

// StatsResult réponse de GET /leaderboard/stats
type StatsResult struct {
	Stats       SpendingStats      `json:"stats"`
	TopSpenders []LeaderboardEntry `json:"topSpenders"`
}
