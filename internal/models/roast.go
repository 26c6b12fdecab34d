package model

import "time"

// RoastLevel classification grossière de l'intensité des dépenses
// (échelle distincte du label du leaderboard, voir store.SpendLabel)
type RoastLevel string

const (
	RoastLevelMild    RoastLevel = "mild"    // ₹0-3000 : tout à fait raisonnable
	RoastLevelMedium  RoastLevel = "medium"  // ₹3000-8000 : ça devient confortable
	RoastLevelSavage  RoastLevel = "savage"  // ₹8000-15000 : addiction sérieuse
	RoastLevelNuclear RoastLevel = "nuclear" // ₹15000+ : folie totale
)

// BurnDegree classification du score numérique 0-100
type BurnDegree string

const (
	BurnDegreeFirst  BurnDegree = "first"  // score < 25
	BurnDegreeSecond BurnDegree = "second" // score < 50
	BurnDegreeThird  BurnDegree = "third"  // score < 75
	BurnDegreeFourth BurnDegree = "fourth" // score >= 75
)

// RoastCategories les quatre angles d'attaque du roast
type RoastCategories struct {
	SpendingHabits string `json:"spendingHabits"`
	OrderFrequency string `json:"orderFrequency"`
	FoodChoices    string `json:"foodChoices"`
	Lifestyle      string `json:"lifestyle"`
}

// RoastAnalysis résultat complet du pipeline de roasting.
// Tous les champs sont garantis non vides, même si le générateur IA échoue.
type RoastAnalysis struct {
	OverallRoast    string          `json:"overallRoast"`
	SpendingShame   string          `json:"spendingShame"`
	RoastLevel      RoastLevel      `json:"roastLevel"`
	RoastScore      int             `json:"roastScore"` // 0-100
	RoastCategories RoastCategories `json:"roastCategories"`
	FunFacts        []string        `json:"funFacts"`   // exactement 3
	BurnDegree      BurnDegree      `json:"burnDegree"`
	RoastEmojis     []string        `json:"roastEmojis"` // 3 à 7
}

// RoastRecord un roast archivé dans l'historique d'un utilisateur
type RoastRecord struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	OverallRoast  string     `json:"overallRoast"`
	SpendingShame string     `json:"spendingShame"`
	RoastLevel    RoastLevel `json:"roastLevel"`
	RoastScore    int        `json:"roastScore"`
	BurnDegree    BurnDegree `json:"burnDegree"`
	FunFacts      []string   `json:"funFacts"`
	RoastEmojis   []string   `json:"roastEmojis"`
	CreatedAt     time.Time  `json:"createdAt"`
}
