package handler

import (
	"net/http"

	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "SwiggyRoast API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"roast": []map[string]string{
				{"method": "POST", "path": "/roast", "description": "Soumettre une preuve Reclaim et se faire roaster"},
				{"method": "GET", "path": "/roast", "description": "Message d'accueil de l'API de roasting"},
				{"method": "GET", "path": "/roasts/users/{userId}", "description": "Historique des roasts d'un utilisateur (params: limit)"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement des dépensiers (params: limit, userId)"},
				{"method": "GET", "path": "/leaderboard/stats", "description": "Statistiques globales et top 5"},
				{"method": "GET", "path": "/leaderboard/users/{userId}", "description": "Rang et percentile d'un utilisateur"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour SwiggyRoast - Se faire roaster sur ses dépenses de livraison",
			"contact":     "support@swiggyroast.dev",
		},
	}

	utils.Success(w, routes)
}
