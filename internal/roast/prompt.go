package roast

import (
	"fmt"
	"strings"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
)

const systemPrompt = `You are a WITTY Indian food delivery roast master! You understand Indian youth, their earnings (₹20k-50k/month), and food culture. You're funny and teasing but FAIR - you roast based on REALISTIC Indian spending patterns, not Western standards.

Roast levels (adjusted for Indian earnings):
- MILD: Light teasing (₹0-3000 total spend) - "Actually quite reasonable!"
- MEDIUM: Playful roasting (₹3000-8000 spend) - "Getting comfortable with delivery"
- SAVAGE: Serious addiction (₹8000-15000 spend) - "Swiggy is your second home"
- NUCLEAR: Absolute madness (₹15000+ spend) - "Are you funding Swiggy's IPO?"

Context: Average Indian youth salary ₹25k-40k/month. ₹1000-2000/month on food delivery is NORMAL. Don't shame reasonable spending! Make it FUNNY but FAIR to Indian standards! 😂🍛`

// buildRoastPrompt construit le prompt utilisateur avec les vraies données
// de dépenses. On demande de la prose libre : toute structure qui fuite
// malgré tout est nettoyée par l'assembleur.
func buildRoastPrompt(a model.Analytics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TARGET: %s\n", a.CustomerName)
	b.WriteString("REAL SWIGGY SPENDING DATA:\n")
	fmt.Fprintf(&b, "💰 Total Spent: ₹%.0f\n", a.TotalSpend)
	fmt.Fprintf(&b, "📦 Total Orders: %d\n", a.TotalOrders)
	fmt.Fprintf(&b, "💵 Average Order: ₹%.0f\n", a.AverageOrderValue)
	fmt.Fprintf(&b, "📅 Monthly Burn: ₹%.0f\n", a.MonthlySpend)
	fmt.Fprintf(&b, "🔄 Order Frequency: %.1f orders/month\n", a.OrderFrequency)
	fmt.Fprintf(&b, "❌ Cancellation Rate: %.1f%%\n", a.CancellationRate*100)
	fmt.Fprintf(&b, "🏠 Delivery Addresses: %d locations\n\n", len(a.Addresses))

	fmt.Fprintf(&b, "Write a super creative, witty roast that's specific to these numbers. Make it feel like a clever friend is teasing %s at a college fest - funny but not mean. Include:\n", a.CustomerName)
	b.WriteString("- A funny main observation about their spending pattern\n")
	fmt.Fprintf(&b, "- Witty jokes about ordering ₹%.0f worth of food per order\n", a.AverageOrderValue)
	b.WriteString("- Creative comparisons (like \"That's like X plates of street food!\")\n")
	fmt.Fprintf(&b, "- Playful commentary on their %.1f orders per month lifestyle\n", a.OrderFrequency)
	b.WriteString("- Some amusing observations about modern Indian food delivery culture\n\n")
	b.WriteString("Make references to Indian food culture, reasonable spending for working youth, and delivery as convenience, not laziness.\n\n")
	b.WriteString("NO LABELS OR STRUCTURE - just write a flowing, conversational roast that flows naturally! 🎭\n")

	return b.String()
}
