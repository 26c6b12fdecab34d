package main

import (
	"context"
	"net/http"
	"os"

	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/api"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/config"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/database"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/handler"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/logger"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/middleware"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/reclaim"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/roast"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/service"
	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Choisir le backend de persistance
	var st store.Store
	if cfg.StoreBackend == "postgres" {
		pool, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.InitSchema(ctx, pool); err != nil {
			logger.Error("Schema init failed: %v", err)
			os.Exit(1)
		}

		st = store.NewPostgresStore(pool)
		logger.Success("Connected to PostgreSQL")
	} else {
		st = store.NewFileStore(cfg.StorePath)
		logger.Warning("Using file store at %s (dev mode, no concurrent write safety)", cfg.StorePath)
	}

	// Générateur de roast (optionnel : sans clé, fallback déterministe)
	var generator roast.Generator
	if cfg.GeminiAPIKey != "" {
		gen, err := roast.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warning("Gemini unavailable, roasts will use fallbacks: %v", err)
		} else {
			generator = gen
			logger.Success("Gemini roast generator ready (%s)", cfg.GeminiModel)
		}
	} else {
		logger.Warning("GEMINI_API_KEY not set, roasts will use deterministic fallbacks")
	}

	// Services
	roastService := service.NewRoastService(st, reclaim.New(nil), roast.NewAssembler(nil), generator)
	leaderboardService := service.NewLeaderboardService(st)
	handler.Init(roastService, leaderboardService)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
