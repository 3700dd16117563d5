package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/kborsotti/pokecard-api/auth"
	"github.com/kborsotti/pokecard-api/config"
	"github.com/kborsotti/pokecard-api/database"
	"github.com/kborsotti/pokecard-api/repository"
	"github.com/kborsotti/pokecard-api/routes"
)

func main() {
	// Load variables from .env when present; the environment wins otherwise.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	r := routes.SetupRoutes(routes.Deps{
		Users:             repository.NewUserStore(db),
		Cards:             repository.NewCardStore(db),
		Tokens:            tokens,
		Logger:            logger,
		ProtectCardRoutes: cfg.ProtectCardRoutes,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
