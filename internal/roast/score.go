package roast

import (
	"math"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
)

// LevelForSpend classe l'intensité des dépenses totales.
// Seuils ajustés aux habitudes indiennes : ₹1000-2000/mois de livraison
// est normal, on ne roaste pas les dépenses raisonnables.
func LevelForSpend(totalSpend float64) model.RoastLevel {
	if totalSpend < 3000 {
		return model.RoastLevelMild
	}
	if totalSpend < 8000 {
		return model.RoastLevelMedium
	}
	if totalSpend < 15000 {
		return model.RoastLevelSavage
	}
	return model.RoastLevelNuclear
}

// Score calcule le score de roastabilité 0-100 d'un profil de dépenses.
// Somme de quatre termes bornés indépendamment, arrondie puis bornée à [0,100] :
//   - dépenses totales (0-40) : ₹15000+ donne le max
//   - fréquence de commande (0-20) : 10+/mois est élevé, 2-3/mois est normal
//   - panier moyen (0-20) : ₹300+ est élevé, ₹150-200 est normal
//   - taux d'annulation (x200, non borné seul)
func Score(a model.Analytics) int {
	score := 0.0

	score += math.Min(40, a.TotalSpend/375)
	score += math.Min(20, math.Max(0, (a.OrderFrequency-1)*3))
	score += math.Min(20, math.Max(0, (a.AverageOrderValue-150)/15))
	score += a.CancellationRate * 200

	return int(math.Min(100, math.Max(0, math.Round(score))))
}

// BurnDegreeForScore classe le score numérique en degré de brûlure
func BurnDegreeForScore(score int) model.BurnDegree {
	if score < 25 {
		return model.BurnDegreeFirst
	}
	if score < 50 {
		return model.BurnDegreeSecond
	}
	if score < 75 {
		return model.BurnDegreeThird
	}
	return model.BurnDegreeFourth
}
