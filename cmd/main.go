package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hirecharm/onboarding-backend/internal/db"
	"github.com/hirecharm/onboarding-backend/internal/handlers"
	"github.com/hirecharm/onboarding-backend/internal/logger"
	"github.com/hirecharm/onboarding-backend/internal/repos"
	"github.com/hirecharm/onboarding-backend/internal/server"
	"github.com/hirecharm/onboarding-backend/internal/services"
	"github.com/hirecharm/onboarding-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	clientRepo := repos.NewClientRepo(thePG, log)
	submissionRepo := repos.NewSubmissionRepo(thePG, log)
	segmentRepo := repos.NewSegmentRepo(thePG, log)
	personaRepo := repos.NewPersonaRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	onboardingService := services.NewOnboardingService(thePG, log, clientRepo, submissionRepo, segmentRepo, personaRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	onboardingHandler := handlers.NewOnboardingHandler(log, onboardingService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		OnboardingHandler: onboardingHandler,
	})

	port := utils.GetEnv("PORT", "8000", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
