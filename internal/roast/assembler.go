package roast

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
)

const (
	categorySpending  = "spending"
	categoryFrequency = "frequency"
	categoryFood      = "food"
	categoryLifestyle = "lifestyle"
)

// Labels internes du prompt qui peuvent fuiter dans la réponse du
// générateur. On les retire défensivement, le générateur n'est tenu
// à aucune structure.
var labelPattern = regexp.MustCompile(`(?i)(OVERALL_ROAST|SPENDING_SHAME|SPENDING_HABITS|ORDER_FREQUENCY|FOOD_CHOICES|LIFESTYLE|FUN_FACT_\d+|EMOJIS):\s*`)

var (
	numberedListPattern = regexp.MustCompile(`\d+\.\s*`)
	sentenceEndPattern  = regexp.MustCompile(`[.!?]\s+`)
)

// Motifs de "fun facts" dans le texte libre (formulations comparatives)
var factPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)That's like [^\n]+`),
	regexp.MustCompile(`(?i)You could have [^\n]+`),
	regexp.MustCompile(`(?i)Your [^\n]+ means [^\n]+`),
	regexp.MustCompile(`₹\d+[^\n]+`),
}

// Assembler combine le texte libre du générateur avec les analytics et le
// score pour produire un RoastAnalysis complet. Chaque champ de sortie est
// garanti non vide ; l'aléa des banques de secours est injectable pour
// figer les tests.
type Assembler struct {
	rng *rand.Rand
}

func NewAssembler(rng *rand.Rand) *Assembler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Assembler{rng: rng}
}

// Assemble construit le roast complet à partir du texte brut du générateur.
// Un texte vide (générateur en panne) bascule sur le fallback statique.
func (as *Assembler) Assemble(a model.Analytics, raw string) model.RoastAnalysis {
	clean := CleanContent(raw)
	if clean == "" {
		return as.Fallback(a)
	}

	sentences := splitSentences(clean)
	paragraphs := splitParagraphs(clean)

	score := Score(a)

	return model.RoastAnalysis{
		OverallRoast:  firstNonEmpty(at(sentences, 0), at(paragraphs, 0), as.pick(customRoasts(a))),
		SpendingShame: firstNonEmpty(at(sentences, 1), at(paragraphs, 1), as.pick(spendingShames(a))),
		RoastLevel:    LevelForSpend(a.TotalSpend),
		RoastScore:    score,
		RoastCategories: model.RoastCategories{
			SpendingHabits: as.categoryRoast(categorySpending, a, sentences),
			OrderFrequency: as.categoryRoast(categoryFrequency, a, sentences),
			FoodChoices:    as.categoryRoast(categoryFood, a, sentences),
			Lifestyle:      as.categoryRoast(categoryLifestyle, a, sentences),
		},
		FunFacts:    as.extractFacts(clean, a),
		BurnDegree:  BurnDegreeForScore(score),
		RoastEmojis: as.extractEmojis(clean, a),
	}
}

// Fallback roast entièrement déterministe, construit uniquement depuis les
// analytics. Utilisé quand le générateur échoue ou ne renvoie rien.
func (as *Assembler) Fallback(a model.Analytics) model.RoastAnalysis {
	isLowSpending := a.TotalSpend < 3000
	score := Score(a)

	analysis := model.RoastAnalysis{
		RoastLevel: LevelForSpend(a.TotalSpend),
		RoastScore: score,
		BurnDegree: BurnDegreeForScore(score),
	}

	if isLowSpending {
		analysis.OverallRoast = fmt.Sprintf("%s, ₹%.0f on %d orders? That's actually quite reasonable for today's lifestyle! Your wallet and your taste buds are in perfect harmony! 😊", a.CustomerName, a.TotalSpend, a.TotalOrders)
		analysis.SpendingShame = fmt.Sprintf("₹%.0f per month is the kind of balanced spending your parents would be proud of!", a.MonthlySpend)
		analysis.RoastCategories = model.RoastCategories{
			SpendingHabits: "Fiscally responsible foodie!",
			OrderFrequency: "Balanced delivery life!",
			FoodChoices:    "Smart food choices!",
			Lifestyle:      "Modern yet practical!",
		}
		analysis.RoastEmojis = []string{"😊", "👍", "🍛", "💰", "✨"}
	} else {
		analysis.OverallRoast = fmt.Sprintf("%s, ₹%.0f on food delivery! You're single-handedly keeping Swiggy's investors happy! 😂", a.CustomerName, a.TotalSpend)
		analysis.SpendingShame = fmt.Sprintf("₹%.0f every month? At this rate, you'll have your own dedicated delivery partner!", a.MonthlySpend)
		analysis.RoastCategories = model.RoastCategories{
			SpendingHabits: "Your wallet is crying in Swiggy Orange!",
			OrderFrequency: "The delivery app knows you better than your mom!",
			FoodChoices:    "Living the premium delivery lifestyle!",
			Lifestyle:      "Kitchen? What kitchen? You only know delivery!",
		}
		analysis.RoastEmojis = []string{"🔥", "😂", "💸", "🍕", "😭"}
	}

	firstFact := fmt.Sprintf("That's like %d plates of street food - totally reasonable!", int(a.TotalSpend/20))
	if !isLowSpending {
		firstFact = fmt.Sprintf("You could have bought %d packets of instant noodles!", int(a.TotalSpend/50))
	}
	analysis.FunFacts = []string{
		firstFact,
		fmt.Sprintf("%.1f orders per month means you're a balanced delivery user!", a.OrderFrequency),
		fmt.Sprintf("₹%.0f per order is pretty standard for today's portions!", a.AverageOrderValue),
	}

	return analysis
}

// CleanContent retire les labels de champs et marqueurs de liste qui
// auraient fuité depuis le prompt du générateur
func CleanContent(content string) string {
	clean := labelPattern.ReplaceAllString(content, "")
	clean = numberedListPattern.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// splitSentences découpe sur la ponctuation de fin de phrase suivie
// d'un espace, en ignorant les fragments de moins de 10 caractères
func splitSentences(content string) []string {
	var sentences []string
	for _, part := range sentenceEndPattern.Split(content, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > 10 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// splitParagraphs découpe sur les lignes vides, fragments de moins
// de 5 caractères ignorés
func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, part := range strings.Split(content, "\n\n") {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > 5 {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}

// categoryRoast cherche d'abord une phrase pertinente dans le texte du
// générateur, sinon pioche dans la banque de la catégorie
func (as *Assembler) categoryRoast(category string, a model.Analytics, sentences []string) string {
	for _, sentence := range sentences {
		if sentenceMatchesCategory(category, sentence) {
			return sentence
		}
	}
	return as.pick(categoryBank(category, a))
}

func sentenceMatchesCategory(category, sentence string) bool {
	lower := strings.ToLower(sentence)
	var keywords []string
	switch category {
	case categorySpending:
		keywords = []string{"₹", "spend", "money"}
	case categoryFrequency:
		keywords = []string{"order", "month", "time"}
	case categoryFood:
		keywords = []string{"food", "meal", "delivery"}
	case categoryLifestyle:
		keywords = []string{"life", "style", "habit"}
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractFacts récupère jusqu'à 3 fun facts dans le texte (max 2 par motif),
// puis complète avec la banque de facts pour en garantir exactement 3
func (as *Assembler) extractFacts(content string, a model.Analytics) []string {
	var facts []string
	for _, pattern := range factPatterns {
		matches := pattern.FindAllString(content, 2)
		facts = append(facts, matches...)
	}

	if len(facts) >= 3 {
		return facts[:3]
	}

	for _, fact := range factBank(a) {
		if len(facts) == 3 {
			break
		}
		facts = append(facts, fact)
	}
	return facts
}

// extractEmojis extrait les pictogrammes Unicode du texte (jusqu'à 7) ;
// s'il y en a moins de 3, pioche un jeu fixe selon le niveau de dépenses
func (as *Assembler) extractEmojis(content string, a model.Analytics) []string {
	var emojis []string
	for _, r := range content {
		if isPictograph(r) {
			emojis = append(emojis, string(r))
			if len(emojis) == 7 {
				break
			}
		}
	}

	if len(emojis) >= 3 {
		return emojis
	}

	sets := highSpendEmojiSets
	if a.TotalSpend < 3000 {
		sets = lowSpendEmojiSets
	}
	return sets[as.rng.Intn(len(sets))]
}

// isPictograph plages Unicode des émoticônes, symboles divers,
// transport, drapeaux et dingbats
func isPictograph(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F:
		return true
	case r >= 0x1F300 && r <= 0x1F5FF:
		return true
	case r >= 0x1F680 && r <= 0x1F6FF:
		return true
	case r >= 0x1F1E0 && r <= 0x1F1FF:
		return true
	case r >= 0x2600 && r <= 0x26FF:
		return true
	case r >= 0x2700 && r <= 0x27BF:
		return true
	}
	return false
}

func (as *Assembler) pick(bank []string) string {
	return bank[as.rng.Intn(len(bank))]
}

func at(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
