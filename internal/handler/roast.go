package handler

import (
	"net/http"

	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/utils"
)

type roastRequest struct {
	Proofs interface{} `json:"proofs"`
}

// SubmitRoast traite une preuve Reclaim : parse les analytics, génère le
// roast et met à jour le classement
func SubmitRoast(w http.ResponseWriter, r *http.Request) {
	var req roastRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Proofs == nil {
		utils.Error(w, http.StatusBadRequest, "no proof data provided")
		return
	}

	result, err := roastService.SubmitProof(r.Context(), req.Proofs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not generate roast: "+err.Error())
		return
	}

	utils.Success(w, result)
}

// RoastInfo message d'accueil de l'endpoint roast
func RoastInfo(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "Swiggy Roasting API 🔥 - Use POST with proof data to get roasted!")
}
