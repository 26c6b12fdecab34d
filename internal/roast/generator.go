package roast

import (
	"context"
	"fmt"

	model "github.com/MassBabyGeek/SwiggyRoast-backend/internal/models"
	"google.golang.org/genai"
)

// Generator produit le texte libre du roast. Aucune structure n'est
// garantie en sortie : l'assembleur nettoie et complète quoi qu'il reçoive.
type Generator interface {
	GenerateRoast(ctx context.Context, a model.Analytics) (string, error)
}

// GeminiGenerator génère le roast via l'API Gemini
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: modelName}, nil
}

// GenerateRoast demande un roast en prose libre. Température élevée et
// pénalités de répétition pour varier les roasts d'un utilisateur à l'autre.
func (g *GeminiGenerator) GenerateRoast(ctx context.Context, a model.Analytics) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(buildRoastPrompt(a)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](1.1),
			MaxOutputTokens:   2500,
			PresencePenalty:   genai.Ptr[float32](0.6),
			FrequencyPenalty:  genai.Ptr[float32](0.8),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("no roast generated")
	}

	return text, nil
}
