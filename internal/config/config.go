package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config configuration du serveur, chargée depuis l'environnement (.env en dev)
type Config struct {
	Port string

	// Backend de persistance : "postgres" ou "file"
	StoreBackend string
	StorePath    string // chemin du fichier JSON quand StoreBackend == "file"

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Générateur de roast (Gemini). Vide = fallback déterministe uniquement.
	GeminiAPIKey string
	GeminiModel  string
}

func LoadConfig() (*Config, error) {
	// .env optionnel, l'environnement réel prime
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", "file"),
		StorePath:    getEnv("STORE_PATH", "data/leaderboard.json"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBName:       getEnv("DB_NAME", "swiggyroast"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
