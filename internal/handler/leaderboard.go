package handler

import (
	"net/http"
	"strconv"

	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetLeaderboard récupère le classement général des dépensiers
// (params: limit, userId pour marquer l'utilisateur courant)
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 10
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}
	userID := query.Get("userId")

	result, err := leaderboardService.GetLeaderboard(r.Context(), limit, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch leaderboard: "+err.Error())
		return
	}

	utils.Success(w, result)
}

// GetUserRank récupère le rang d'un utilisateur dans le classement
func GetUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	ranking, err := leaderboardService.GetUserRank(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user rank: "+err.Error())
		return
	}
	if ranking == nil {
		utils.Error(w, http.StatusNotFound, "user not found in leaderboard")
		return
	}

	utils.Success(w, ranking)
}

// GetSpendingStats statistiques globales et top 5 des dépensiers
func GetSpendingStats(w http.ResponseWriter, r *http.Request) {
	result, err := leaderboardService.GetStats(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch stats: "+err.Error())
		return
	}

	utils.Success(w, result)
}

// GetRoastHistory roasts archivés d'un utilisateur (param: limit)
func GetRoastHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	history, err := leaderboardService.GetRoastHistory(r.Context(), userID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch roast history: "+err.Error())
		return
	}

	utils.Success(w, history)
}
