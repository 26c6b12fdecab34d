package reclaim

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
)

// Valeurs par défaut quand la preuve ne porte pas l'identité
const (
	DefaultName  = "Anonymous"
	DefaultEmail = "user@example.com"
	DefaultID    = "anonymous"
)

// Client parse les preuves Reclaim et génère des données de démo.
// Le générateur aléatoire est injectable pour pouvoir figer les tests.
type Client struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Client {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Client{rng: rng}
}

// ParseAnalytics extrait les données Swiggy d'une preuve Reclaim.
// La preuve est un arbre non typé ; seul le chemin
// publicData.data.analysis.last12MonthOrders est contractuel (avec au plus
// un niveau d'enveloppe tableau). Si la forme attendue est absente,
// retourne (nil, false), ce n'est pas une erreur.
func ParseAnalytics(payload interface{}) (*model.Analytics, bool) {
	data, ok := publicData(payload)
	if !ok {
		return nil, false
	}

	analysis, ok := asMap(data["analysis"])
	if !ok {
		return nil, false
	}

	orders, ok := asMap(analysis["last12MonthOrders"])
	if !ok {
		return nil, false
	}
	address, _ := asMap(analysis["address"])

	totalOrders := toInt(orders["totalOrders"])

	analytics := &model.Analytics{
		CustomerName:      toString(data["name"], DefaultName),
		CustomerID:        toString(data["customer_id"], DefaultID),
		Email:             toString(data["email"], DefaultEmail),
		TotalOrders:       totalOrders,
		TotalSpend:        toFloat(orders["totalSpend"]),
		AverageOrderValue: toFloat(orders["averageOrderValue"]),
		MonthlySpend:      toFloat(orders["averageMonthlySpend"]),
		OrderFrequency:    round1(float64(totalOrders) / 12), // commandes par mois
		CancellationRate:  toFloat(orders["cancellationRatio"]),
		LastOrderAge:      toString(address["lastDeliveryAge"], "Unknown"),
		Addresses:         toStringMap(address["allAddresses"]),
	}

	return analytics, true
}

// MockName extrait le nom du client depuis claimData.parameters de la preuve,
// utilisé pour personnaliser les données de démo quand la preuve ne porte
// pas d'analytics exploitables
func MockName(payload interface{}) string {
	root, ok := asMap(payload)
	if !ok {
		return "Demo User"
	}
	claim, ok := asMap(root["claimData"])
	if !ok {
		return "Demo User"
	}
	// parameters est une chaîne JSON dans les preuves Reclaim
	var params map[string]interface{}
	switch p := claim["parameters"].(type) {
	case string:
		if err := json.Unmarshal([]byte(p), &params); err != nil {
			return "Demo User"
		}
	case map[string]interface{}:
		params = p
	default:
		return "Demo User"
	}
	values, ok := asMap(params["paramValues"])
	if !ok {
		return "Demo User"
	}
	return toString(values["customerName"], "Demo User")
}

// MockAnalytics génère des données structurellement valides pour la démo :
// dépenses ₹1000-6000, 10-40 commandes, 0-10% d'annulations
func (c *Client) MockAnalytics(customerName string) model.Analytics {
	if customerName == "" {
		customerName = "Demo User"
	}

	mockSpend := math.Round(c.rng.Float64()*5000 + 1000)
	mockOrders := int(math.Round(c.rng.Float64()*30 + 10))

	return model.Analytics{
		CustomerName:      customerName,
		CustomerID:        fmt.Sprintf("mock-%d", time.Now().UnixMilli()),
		Email:             "demo@example.com",
		TotalOrders:       mockOrders,
		TotalSpend:        mockSpend,
		AverageOrderValue: math.Round(mockSpend / float64(mockOrders)),
		MonthlySpend:      math.Round(mockSpend / 12),
		OrderFrequency:    round1(float64(mockOrders) / 12),
		CancellationRate:  c.rng.Float64() * 0.1,
		LastOrderAge:      fmt.Sprintf("%d days ago", c.rng.Intn(30)),
		Addresses: map[string]string{
			"Home": "Demo Address, Demo City",
			"Work": "Demo Office, Demo Area",
		},
	}
}

// publicData localise publicData.data à la racine de la preuve,
// ou dans le premier élément si la preuve est enveloppée dans un tableau
func publicData(payload interface{}) (map[string]interface{}, bool) {
	if root, ok := asMap(payload); ok {
		if pd, ok := asMap(root["publicData"]); ok {
			return asMap(pd["data"])
		}
	}
	if arr, ok := payload.([]interface{}); ok && len(arr) > 0 {
		if first, ok := asMap(arr[0]); ok {
			if pd, ok := asMap(first["publicData"]); ok {
				return asMap(pd["data"])
			}
		}
	}
	return nil, false
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

// toFloat coerce une valeur JSON vers float64, 0 si absente ou illisible
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}

func toInt(v interface{}) int {
	return int(toFloat(v))
}

func toString(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func toStringMap(v interface{}) map[string]string {
	out := map[string]string{}
	if m, ok := asMap(v); ok {
		for k, val := range m {
			if s, ok := val.(string); ok {
				out[k] = s
			}
		}
	}
	return out
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
