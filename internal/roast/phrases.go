package roast

import (
	"fmt"
	"math"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
)

// Banques de phrases de secours quand le générateur IA ne fournit rien
// d'exploitable. Toutes sont paramétrées par les données réelles de
// l'utilisateur, jamais statiques.

func customRoasts(a model.Analytics) []string {
	return []string{
		fmt.Sprintf("%s, with ₹%.0f total spend, you're like that friend who orders biryani and then asks for extra raita packets! 😂", a.CustomerName, a.TotalSpend),
		fmt.Sprintf("₹%.0f on %d orders? You've achieved the perfect balance of treating yourself without going broke! 🎯", a.TotalSpend, a.TotalOrders),
		fmt.Sprintf("%s, your Swiggy game is stronger than your cooking game, but at least your wallet isn't crying! 💪", a.CustomerName),
		fmt.Sprintf("With ₹%.0f average orders, you're the type who reads the entire menu and still orders the same thing! 🤔", a.AverageOrderValue),
		fmt.Sprintf("%d orders and counting! You've basically become a Swiggy scholar with a PhD in food delivery! 🎓", a.TotalOrders),
	}
}

func spendingShames(a model.Analytics) []string {
	return []string{
		fmt.Sprintf("₹%.0f per month? That's like buying one expensive coffee every few days - totally reasonable! ☕", a.MonthlySpend),
		fmt.Sprintf("Your monthly ₹%.0f delivery budget shows you know how to live without going overboard! 📱", a.MonthlySpend),
		fmt.Sprintf("₹%.0f/month means you're treating delivery like dessert - occasionally and guilt-free! 🍰", a.MonthlySpend),
		fmt.Sprintf("At ₹%.0f monthly, you're the responsible friend who splits the bill fairly! 🤝", a.MonthlySpend),
		fmt.Sprintf("₹%.0f per month is what some people spend on just one weekend outing! Smart priorities! 🧠", a.MonthlySpend),
	}
}

func categoryBank(category string, a model.Analytics) []string {
	switch category {
	case categorySpending:
		return []string{
			fmt.Sprintf("₹%.0f total? That's like %d cups of chai - totally reasonable!", a.TotalSpend, int(a.TotalSpend/30)),
			fmt.Sprintf("₹%.0f/month is what some people spend on Netflix subscriptions!", a.MonthlySpend),
			"Your spending is more balanced than a perfectly loaded biryani plate!",
			fmt.Sprintf("₹%.0f per order shows you know the value of money AND good food!", a.AverageOrderValue),
		}
	case categoryFrequency:
		return []string{
			fmt.Sprintf("%.1f orders/month means you're not a delivery addict, just a smart user!", a.OrderFrequency),
			fmt.Sprintf("You order every %d days - that's strategic planning!", orderGapDays(a.OrderFrequency)),
			"Your ordering pattern is more consistent than Mumbai local trains!",
			fmt.Sprintf("%d orders total? That's commitment to the delivery lifestyle!", a.TotalOrders),
		}
	case categoryFood:
		return []string{
			fmt.Sprintf("₹%.0f average suggests you order actual meals, not just snacks!", a.AverageOrderValue),
			"Your food choices are probably better than your playlist choices!",
			"You've mastered the art of online menu browsing without breaking the bank!",
			"Your delivery game is stronger than your cooking game (probably)!",
		}
	default: // categoryLifestyle
		return []string{
			"Living that modern Indian life - convenience without the guilt!",
			"You've embraced technology while keeping your expenses in check!",
			"Your lifestyle screams \"I've got my priorities straight!\"",
			"Balancing tradition (home food) with innovation (delivery apps) like a true millennial!",
		}
	}
}

func factBank(a model.Analytics) []string {
	return []string{
		fmt.Sprintf("That's like %d plates of street food - totally worth it!", int(a.TotalSpend/20)),
		fmt.Sprintf("₹%.0f per order is what some people spend on a single Starbucks drink!", a.AverageOrderValue),
		fmt.Sprintf("%.1f orders/month means you're more disciplined than most gym memberships!", a.OrderFrequency),
		fmt.Sprintf("You've spent ₹%.0f total, which is less than one month of most people's coffee addiction!", a.TotalSpend),
		"Your delivery frequency suggests you've mastered the art of balanced indulgence!",
		fmt.Sprintf("₹%.0f/month is what some people spend on unnecessary subscriptions!", a.MonthlySpend),
	}
}

// Jeux d'emojis de secours, choisis selon que les dépenses restent sous
// le seuil "mild" (₹3000)
var (
	lowSpendEmojiSets = [][]string{
		{"😊", "👍", "🍛", "💰", "✨"},
		{"🎯", "😄", "🍕", "💚", "⭐"},
		{"😁", "🤗", "🍜", "💛", "🌟"},
	}
	highSpendEmojiSets = [][]string{
		{"🔥", "😂", "💸", "🍕", "😭"},
		{"🤑", "🍔", "😅", "💰", "🎭"},
		{"🍟", "😵", "💳", "🤯", "🎪"},
	}
)

// orderGapDays nombre de jours entre deux commandes pour une fréquence donnée
func orderGapDays(ordersPerMonth float64) int {
	if ordersPerMonth <= 0 {
		return 30
	}
	return int(math.Ceil(30 / ordersPerMonth))
}
