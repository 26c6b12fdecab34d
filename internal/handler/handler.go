package handler

import (
	"net/http"

	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/service"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/utils"
)

var (
	roastService       *service.RoastService
	leaderboardService *service.LeaderboardService
)

// Init branche les services sur les handlers, appelé une fois au démarrage
func Init(rs *service.RoastService, ls *service.LeaderboardService) {
	roastService = rs
	leaderboardService = ls
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
