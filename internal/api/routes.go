package api

import (
	"net/http"

	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/handler"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/middleware"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Roast
	r.HandleFunc("/roast", handler.SubmitRoast).Methods(http.MethodPost)
	r.HandleFunc("/roast", handler.RoastInfo).Methods(http.MethodGet)
	r.HandleFunc("/roasts/users/{userId}", handler.GetRoastHistory).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/stats", handler.GetSpendingStats).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{userId}", handler.GetUserRank).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
